package recommendationService

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/youtube"
	"github.com/sirupsen/logrus"
)

type IRecommendationService interface {
	Recommend(category entity.Category, count int) recommendation.MusicRecommendation
	MoodPlaylist(category entity.Category, minutes int) recommendation.MoodPlaylist
	TransitionPlaylist(from, to entity.Category) recommendation.TransitionPlaylist

	Suggest(category entity.Category, branch string, at time.Time) recommendation.SubjectSuggestion
	WeeklyPlan(category entity.Category, branch string) recommendation.WeeklyPlan

	Catalog(ctx context.Context, category entity.Category) (catalog.Recommendation, error)
	CatalogStatus() recommendation.CatalogStatus
	SearchYouTube(ctx context.Context, query string, limit int) ([]catalog.Track, error)
	YouTubePlaylist(ctx context.Context, playlistID string, limit int) ([]catalog.Track, error)
}

type breakerState interface {
	State() string
}

type recommendationService struct {
	table    *profile.Table
	provider catalog.Provider
	youtube  youtube.IYouTube
	log      *logrus.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New wires the engines. provider and yt may be nil; seed makes the random
// choices reproducible.
func New(
	log *logrus.Logger,
	table *profile.Table,
	provider catalog.Provider,
	yt youtube.IYouTube,
	seed int64,
) IRecommendationService {
	return &recommendationService{
		table:    table,
		provider: provider,
		youtube:  yt,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// sample returns n distinct items of from in random order.
func (s *recommendationService) sample(from []string, n int) []string {
	if n > len(from) {
		n = len(from)
	}
	if n <= 0 {
		return []string{}
	}
	s.mu.Lock()
	perm := s.rng.Perm(len(from))
	s.mu.Unlock()

	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = from[perm[i]]
	}
	return out
}

func (s *recommendationService) choice(from []string) string {
	if len(from) == 0 {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return from[s.rng.Intn(len(from))]
}
