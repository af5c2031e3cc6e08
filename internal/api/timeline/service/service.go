package timelineService

import (
	"context"
	"sync"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	timelineRepository "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/repository"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ITimelineService interface {
	Log(ctx context.Context, category entity.Category, confidence float64, extra map[string]interface{}) (entity.TimelineEntry, error)
	GetTimeline(ctx context.Context, days int) (timeline.Timeline, error)
	SessionSummary(ctx context.Context, minutes int) (timeline.SessionSummary, error)
	Entries(ctx context.Context) ([]entity.TimelineEntry, error)
	Clear(ctx context.Context) error
}

type timelineService struct {
	log   *logrus.Logger
	repo  timelineRepository.Repository
	utils utils.IUtils
	now   func() time.Time

	// mu serialises every read-modify-write of the store and guards stats.
	mu    sync.Mutex
	stats *entity.TimelineStatistics
}

type Option func(*timelineService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *timelineService) {
		s.now = now
	}
}

func New(log *logrus.Logger, repo timelineRepository.Repository, utils utils.IUtils, opts ...Option) ITimelineService {
	s := &timelineService{
		log:   log,
		repo:  repo,
		utils: utils,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
