package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/metrics"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 3,
	}
}

// Resilient calls primary through a circuit breaker and answers from
// fallback while the primary fails or the breaker is open.
type Resilient struct {
	primary  Provider
	fallback Provider
	cb       *gobreaker.CircuitBreaker[Recommendation]
	log      *logrus.Logger
}

func NewResilient(primary, fallback Provider, cfg BreakerConfig, logger *logrus.Logger) *Resilient {
	r := &Resilient{primary: primary, fallback: fallback, log: logger}
	r.cb = gobreaker.NewCircuitBreaker[Recommendation](gobreaker.Settings{
		Name:        primary.Name(),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(log.Fields{
				"provider": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("Catalog circuit breaker changed state")
		},
	})
	return r
}

func (r *Resilient) Name() string { return r.primary.Name() }

func (r *Resilient) State() string { return r.cb.State().String() }

func (r *Resilient) GetRecommendations(ctx context.Context, category entity.Category) (Recommendation, error) {
	rec, err := r.cb.Execute(func() (Recommendation, error) {
		return r.primary.GetRecommendations(ctx, category)
	})
	metrics.RecordCatalogRequest(r.primary.Name(), err)
	if err == nil {
		return rec, nil
	}

	fields := log.Fields{
		"request_id": log.RequestIDFrom(ctx),
		"provider":   r.primary.Name(),
		"error":      err.Error(),
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		r.log.WithFields(fields).Debug("Catalog breaker open, serving fallback")
	} else {
		r.log.WithFields(fields).Warn("Catalog provider failed, serving fallback")
	}

	if r.fallback == nil {
		return Recommendation{}, ErrUnavailable
	}
	return r.fallback.GetRecommendations(ctx, category)
}
