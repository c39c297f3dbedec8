package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"userregistry/internal/middleware"
	"userregistry/internal/models"
	"userregistry/internal/repository"
	"userregistry/internal/services"
)

// RegistrationSubmitter runs one candidate record through the submission pipeline.
type RegistrationSubmitter interface {
	Submit(ctx context.Context, req models.RegistrationRequest) (*models.Registration, error)
}

// RegistrationLister reads back every stored registration, newest first.
type RegistrationLister interface {
	ListAll(ctx context.Context) ([]models.Registration, error)
}

type RegistrationController struct {
	submitter RegistrationSubmitter
	lister    RegistrationLister
}

func NewRegistrationController(submitter RegistrationSubmitter, lister RegistrationLister) *RegistrationController {
	return &RegistrationController{submitter: submitter, lister: lister}
}

// CreateRegistration godoc
// @Summary Register a user
// @Description Validate a registration form, attach a predicted age and store it
// @Tags users
// @Accept json
// @Produce json
// @Param registration body models.RegistrationRequest true "Registration form"
// @Success 201 {object} map[string]interface{} "User created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Failed to create user"
// @Router /api/users [post]
func (rc *RegistrationController) CreateRegistration(c *gin.Context) {
	var req models.RegistrationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	registration, err := rc.submitter.Submit(c.Request.Context(), req)
	if err != nil {
		status, body := submissionFailure(err)
		if status == http.StatusInternalServerError {
			logger := middleware.GetLogger(c)
			logger.Error().Err(err).Msg("Failed to create registration")
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    registration,
	})
}

func submissionFailure(err error) (int, gin.H) {
	var validationErr *services.ValidationError
	var schemaErr *models.SchemaError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		}
	case errors.Is(err, repository.ErrDuplicateEmail):
		return http.StatusBadRequest, gin.H{
			"error":  "Email already registered",
			"fields": gin.H{"email": "Email already registered"},
		}
	case errors.As(err, &schemaErr):
		return http.StatusBadRequest, gin.H{
			"error":  schemaErr.Error(),
			"fields": schemaErr.Fields,
		}
	default:
		return http.StatusInternalServerError, gin.H{
			"error": "Failed to create user",
		}
	}
}

// ListRegistrations godoc
// @Summary List registered users
// @Description Every stored registration, newest first
// @Tags users
// @Produce json
// @Success 200 {array} models.Registration
// @Failure 500 {object} map[string]interface{} "Failed to fetch users"
// @Router /api/users [get]
func (rc *RegistrationController) ListRegistrations(c *gin.Context) {
	registrations, err := rc.lister.ListAll(c.Request.Context())
	if err != nil {
		logger := middleware.GetLogger(c)
		logger.Error().Err(err).Msg("Failed to list registrations")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch users",
		})
		return
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}

	c.JSON(http.StatusOK, registrations)
}
