package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons.
const (
	ReasonValidation = "validation"
	ReasonDuplicate  = "duplicate_email"
	ReasonSchema     = "schema"
	ReasonInternal   = "internal"
)

// Age prediction outcomes.
const (
	OutcomeHit    = "hit"
	OutcomeMiss   = "miss"
	OutcomeCached = "cached"
)

// Metrics holds the Prometheus collectors for the registration pipeline.
type Metrics struct {
	RegistrationsCreated  prometheus.Counter
	RegistrationsRejected *prometheus.CounterVec
	AgePredictions        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "userregistry_registrations_created_total",
			Help: "Total number of registrations persisted",
		}),
		RegistrationsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userregistry_registrations_rejected_total",
			Help: "Total number of registrations rejected, by reason",
		}, []string{"reason"}),
		AgePredictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "userregistry_age_predictions_total",
			Help: "Total number of age lookups, by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementCreated is safe to call on a nil *Metrics.
func (m *Metrics) IncrementCreated() {
	if m == nil {
		return
	}
	m.RegistrationsCreated.Inc()
}

func (m *Metrics) IncrementRejected(reason string) {
	if m == nil {
		return
	}
	m.RegistrationsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveAgePrediction(outcome string) {
	if m == nil {
		return
	}
	m.AgePredictions.WithLabelValues(outcome).Inc()
}
