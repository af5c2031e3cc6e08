package recommendationService

import (
	"context"
	"errors"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/youtube"
)

func (s *recommendationService) Catalog(ctx context.Context, category entity.Category) (catalog.Recommendation, error) {
	if s.provider == nil {
		return catalog.Recommendation{}, recommendation.ErrCatalogUnavailable
	}

	rec, err := s.provider.GetRecommendations(ctx, category)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"provider":   s.provider.Name(),
			"emotion":    category,
			"error":      err.Error(),
		}).Error("Catalog lookup failed")
		return catalog.Recommendation{}, recommendation.ErrCatalogUnavailable
	}
	return rec, nil
}

func (s *recommendationService) CatalogStatus() recommendation.CatalogStatus {
	status := recommendation.CatalogStatus{Provider: "none"}
	if s.provider != nil {
		status.Provider = s.provider.Name()
		if b, ok := s.provider.(breakerState); ok {
			status.BreakerState = b.State()
		}
	}
	status.YouTube = s.youtube != nil && s.youtube.Available()
	return status
}

func (s *recommendationService) SearchYouTube(ctx context.Context, query string, limit int) ([]catalog.Track, error) {
	if s.youtube == nil || !s.youtube.Available() {
		return nil, recommendation.ErrYouTubeDisabled
	}
	tracks, err := s.youtube.Search(ctx, query, limit)
	return tracks, s.youtubeErr(ctx, err)
}

func (s *recommendationService) YouTubePlaylist(ctx context.Context, playlistID string, limit int) ([]catalog.Track, error) {
	if s.youtube == nil || !s.youtube.Available() {
		return nil, recommendation.ErrYouTubeDisabled
	}
	tracks, err := s.youtube.PlaylistTracks(ctx, playlistID, limit)
	return tracks, s.youtubeErr(ctx, err)
}

func (s *recommendationService) youtubeErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, youtube.ErrNotConfigured) {
		return recommendation.ErrYouTubeDisabled
	}
	s.log.WithFields(log.Fields{
		"request_id": log.RequestIDFrom(ctx),
		"error":      err.Error(),
	}).Error("YouTube request failed")
	return recommendation.ErrCatalogUnavailable
}
