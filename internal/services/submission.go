package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"userregistry/internal/agify"
	"userregistry/internal/metrics"
	"userregistry/internal/models"
	"userregistry/internal/repository"
	"userregistry/internal/validation"
)

// ValidationError carries the per-field messages of a rejected candidate.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// IsRejection reports whether err means the submission itself was unacceptable,
// as opposed to the system failing to process it.
func IsRejection(err error) bool {
	var validationErr *ValidationError
	var schemaErr *models.SchemaError
	return errors.As(err, &validationErr) ||
		errors.As(err, &schemaErr) ||
		errors.Is(err, repository.ErrDuplicateEmail)
}

// SubmissionService validates, enriches and persists registrations.
type SubmissionService struct {
	repo      repository.RegistrationRepository
	predictor agify.Predictor
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewSubmissionService(repo repository.RegistrationRepository, predictor agify.Predictor, m *metrics.Metrics) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		predictor: predictor,
		metrics:   m,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the age rule.
func (s *SubmissionService) WithClock(now func() time.Time) *SubmissionService {
	s.now = now
	return s
}

// Submit runs one candidate through validate, predict and persist. It returns the
// stored record with its id and createdAt.
func (s *SubmissionService) Submit(ctx context.Context, req models.RegistrationRequest) (*models.Registration, error) {
	now := s.now()
	if errs := validation.Validate(req, now); !validation.Valid(errs) {
		s.metrics.IncrementRejected(metrics.ReasonValidation)
		return nil, &ValidationError{Fields: errs}
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		s.metrics.IncrementRejected(metrics.ReasonInternal)
		return nil, fmt.Errorf("submit registration: %w", err)
	}
	if exists {
		s.metrics.IncrementRejected(metrics.ReasonDuplicate)
		return nil, repository.ErrDuplicateEmail
	}

	var predictedAge *int
	if s.predictor != nil {
		predictedAge = s.predictor.PredictAge(ctx, agify.FirstName(req.FullName))
	}

	registration, err := req.ToRegistration(predictedAge)
	if err != nil {
		s.metrics.IncrementRejected(metrics.ReasonValidation)
		return nil, &ValidationError{Fields: map[string]string{"request": err.Error()}}
	}

	if err := s.repo.Create(models.WithReferenceTime(ctx, now), registration); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			s.metrics.IncrementRejected(metrics.ReasonDuplicate)
		case IsRejection(err):
			s.metrics.IncrementRejected(metrics.ReasonSchema)
		default:
			s.metrics.IncrementRejected(metrics.ReasonInternal)
			return nil, fmt.Errorf("submit registration: %w", err)
		}
		return nil, err
	}

	s.metrics.IncrementCreated()
	log.Info().
		Uint("registration_id", registration.ID).
		Bool("predicted_age", registration.PredictedAge != nil).
		Msg("Registration created")

	return registration, nil
}
