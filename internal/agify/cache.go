package agify

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"userregistry/internal/metrics"
)

const DefaultCacheTTL = 24 * time.Hour

// AgeCache stores predicted ages by name.
type AgeCache interface {
	GetAge(ctx context.Context, name string) (age int, found bool, err error)
	SetAge(ctx context.Context, name string, age int, ttl time.Duration) error
}

// CachedPredictor answers from the cache when it can and remembers successful
// lookups. Only predictions are cached; a miss is retried on the next call.
type CachedPredictor struct {
	next    Predictor
	cache   AgeCache
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewCachedPredictor(next Predictor, cache AgeCache, ttl time.Duration, m *metrics.Metrics) *CachedPredictor {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedPredictor{next: next, cache: cache, ttl: ttl, metrics: m}
}

func (p *CachedPredictor) PredictAge(ctx context.Context, name string) *int {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}

	age, found, err := p.cache.GetAge(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("Age cache read failed")
	} else if found {
		p.metrics.ObserveAgePrediction(metrics.OutcomeCached)
		return &age
	}

	predicted := p.next.PredictAge(ctx, name)
	if predicted == nil {
		return nil
	}

	if err := p.cache.SetAge(ctx, key, *predicted, p.ttl); err != nil {
		log.Warn().Err(err).Msg("Age cache write failed")
	}
	return predicted
}
