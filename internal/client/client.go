package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"userregistry/internal/models"
)

const DefaultTimeout = 15 * time.Second

// APIError is a non-2xx answer from the registration API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("registration api: status %d", e.Status)
	}
	return fmt.Sprintf("registration api: status %d: %s", e.Status, e.Message)
}

// Rejected reports whether the server refused the record itself rather than
// failing to process it.
func (e *APIError) Rejected() bool {
	return e.Status == http.StatusBadRequest
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

type createdBody struct {
	Message string              `json:"message"`
	User    models.Registration `json:"user"`
}

type ageBody struct {
	Name         string `json:"name"`
	PredictedAge *int   `json:"predictedAge"`
}

// Client talks to the registration HTTP API.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// CreateRegistration posts one candidate record and returns the stored registration.
func (c *Client) CreateRegistration(ctx context.Context, req models.RegistrationRequest) (*models.Registration, error) {
	var created createdBody
	var failure errorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		SetError(&failure).
		Post("/api/users")
	if err != nil {
		return nil, fmt.Errorf("post registration: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Message: failure.Error, Fields: failure.Fields}
	}
	return &created.User, nil
}

// ListRegistrations fetches every stored registration, newest first.
func (c *Client) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	var registrations []models.Registration
	var failure errorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&registrations).
		SetError(&failure).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Message: failure.Error}
	}
	return registrations, nil
}

// PredictAge asks the server for an age preview. Like every predictor it never
// fails the caller; problems yield nil.
func (c *Client) PredictAge(ctx context.Context, name string) *int {
	var body ageBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		SetResult(&body).
		Get("/api/age")
	if err != nil || resp.IsError() {
		log.Debug().Err(err).Str("name", name).Msg("Age preview unavailable")
		return nil
	}
	return body.PredictedAge
}
