package timelineRepository

import (
	"context"
	"fmt"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/redis"
	"github.com/sirupsen/logrus"
)

const DefaultRedisKey = "timeline:entries"

type redisRepository struct {
	client redis.IRedis
	key    string
	log    *logrus.Logger
}

// NewRedis keeps each entry as one JSON element of a Redis list.
func NewRedis(client redis.IRedis, key string, log *logrus.Logger) Repository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisRepository{client: client, key: key, log: log}
}

func (r *redisRepository) Backend() Backend { return BackendRedis }

func (r *redisRepository) Append(ctx context.Context, entry entity.TimelineEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	if err := r.client.RPush(ctx, r.key, string(raw)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"key":        r.key,
			"error":      err.Error(),
		}).Error("Failed to push timeline entry")
		return err
	}
	return nil
}

func (r *redisRepository) ReadAll(ctx context.Context) ([]entity.TimelineEntry, error) {
	items, err := r.client.LRange(ctx, r.key)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.TimelineEntry, 0, len(items))
	for i, item := range items {
		var entry entity.TimelineEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *redisRepository) Clear(ctx context.Context) error {
	return r.client.Delete(ctx, r.key)
}
