package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"userregistry/internal/models"
)

// ErrDuplicateEmail is returned when a record with the same email already exists.
var ErrDuplicateEmail = errors.New("email already registered")

const pgUniqueViolation = "23505"

type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	ListAll(ctx context.Context) ([]models.Registration, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type registrationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return NewRegistrationRepositoryWithClock(db, time.Now)
}

// NewRegistrationRepositoryWithClock uses now to stamp createdAt.
func NewRegistrationRepositoryWithClock(db *gorm.DB, now func() time.Time) RegistrationRepository {
	return &registrationRepository{db: db, now: now}
}

// Create stamps createdAt and inserts the record. Schema violations come back as
// *models.SchemaError and unique violations as ErrDuplicateEmail.
func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	registration.ID = 0
	registration.CreatedAt = r.now().UTC()

	err := r.db.WithContext(ctx).Create(registration).Error
	if err == nil {
		return nil
	}

	var schemaErr *models.SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr
	}
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("insert registration: %w", err)
}

func (r *registrationRepository) ListAll(ctx context.Context) ([]models.Registration, error) {
	var registrations []models.Registration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&registrations).Error
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return registrations, nil
}

func (r *registrationRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
