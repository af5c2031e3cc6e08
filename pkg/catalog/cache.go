package catalog

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/metrics"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/sirupsen/logrus"
)

// Store is the subset of the redis client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
}

// Cached keeps provider answers in store for ttl. Cache errors are logged
// and never fail a lookup.
type Cached struct {
	next  Provider
	store Store
	ttl   time.Duration
	log   *logrus.Logger
}

func NewCached(next Provider, store Store, ttl time.Duration, logger *logrus.Logger) *Cached {
	return &Cached{next: next, store: store, ttl: ttl, log: logger}
}

func (c *Cached) Name() string { return c.next.Name() }

func (c *Cached) key(category entity.Category) string {
	return "catalog:" + c.next.Name() + ":" + string(category)
}

func (c *Cached) GetRecommendations(ctx context.Context, category entity.Category) (Recommendation, error) {
	key := c.key(category)

	if raw, err := c.store.Get(ctx, key); err == nil {
		var rec Recommendation
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &rec); err == nil {
			metrics.RecordCatalogCacheHit(c.next.Name())
			return rec, nil
		}
	}

	rec, err := c.next.GetRecommendations(ctx, category)
	if err != nil {
		return Recommendation{}, err
	}

	// Only cache what the configured provider itself produced.
	if rec.Provider != c.next.Name() {
		return rec, nil
	}

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(rec)
	if err == nil {
		err = c.store.Set(ctx, key, raw, c.ttl)
	}
	if err != nil {
		c.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"key":        key,
			"error":      err.Error(),
		}).Warn("Failed to cache catalog answer")
	}
	return rec, nil
}
