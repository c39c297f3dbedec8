package agify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"userregistry/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.agify.io"
	DefaultTimeout = 5 * time.Second

	// MinNameLength is the shortest name the form preview looks up. Submissions
	// always look up the first name, whatever its length.
	MinNameLength = 2
)

// Predictor estimates an age from a first name. A nil result means no prediction;
// lookups never fail the caller.
type Predictor interface {
	PredictAge(ctx context.Context, name string) *int
}

// Client queries the agify name-to-age service.
type Client struct {
	http    *resty.Client
	metrics *metrics.Metrics
}

type response struct {
	Name  string   `json:"name"`
	Age   *float64 `json:"age"`
	Count int      `json:"count"`
}

// NewClient creates a client for baseURL. A zero timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		metrics: m,
	}
}

func (c *Client) PredictAge(ctx context.Context, name string) *int {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		Get("/")
	if err != nil {
		log.Debug().Err(err).Str("name", name).Msg("Age prediction request failed")
		c.metrics.ObserveAgePrediction(metrics.OutcomeMiss)
		return nil
	}
	if resp.IsError() {
		log.Debug().Int("status", resp.StatusCode()).Str("name", name).Msg("Age prediction rejected")
		c.metrics.ObserveAgePrediction(metrics.OutcomeMiss)
		return nil
	}

	var body response
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Age == nil {
		log.Debug().Str("name", name).Msg("Age prediction returned no age")
		c.metrics.ObserveAgePrediction(metrics.OutcomeMiss)
		return nil
	}

	age := int(*body.Age)
	c.metrics.ObserveAgePrediction(metrics.OutcomeHit)
	return &age
}

// PreviewEligible reports whether a name is long enough for the preview lookup
// made while the form is being filled in.
func PreviewEligible(name string) bool {
	return len([]rune(strings.TrimSpace(name))) >= MinNameLength
}

// FirstName returns the first whitespace-delimited token of fullName.
func FirstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
