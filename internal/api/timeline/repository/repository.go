package timelineRepository

import (
	"context"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
)

type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

// Repository persists timeline entries in append order.
type Repository interface {
	Backend() Backend
	Append(ctx context.Context, entry entity.TimelineEntry) error
	ReadAll(ctx context.Context) ([]entity.TimelineEntry, error)
	Clear(ctx context.Context) error
}
