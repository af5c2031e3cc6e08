package timelineService

import (
	"context"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/metrics"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

func (s *timelineService) Log(ctx context.Context, category entity.Category, confidence float64, extra map[string]interface{}) (entity.TimelineEntry, error) {
	if !category.Valid() {
		return entity.TimelineEntry{}, timeline.ErrInvalidEmotion
	}

	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return entity.TimelineEntry{}, err
	}
	entry := entity.NewTimelineEntry(id, category, confidence, now, extra)

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.repo.Append(ctx, entry)
	metrics.RecordTimelineWrite(string(s.repo.Backend()), err)
	if err != nil {
		return entity.TimelineEntry{}, timeline.ErrTimelineStorage
	}

	entries, err := s.repo.ReadAll(ctx)
	if err != nil {
		return entity.TimelineEntry{}, timeline.ErrTimelineStorage
	}
	s.stats = Statistics(entries, now)
	metrics.TimelineEntries.Set(float64(len(entries)))

	s.log.WithFields(log.Fields{
		"request_id": log.RequestIDFrom(ctx),
		"emotion":    category,
		"confidence": entry.Confidence,
	}).Debug("Logged emotion")

	return entry, nil
}

func (s *timelineService) Entries(ctx context.Context) ([]entity.TimelineEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, timeline.ErrTimelineStorage
	}
	return entries, nil
}

func (s *timelineService) GetTimeline(ctx context.Context, days int) (timeline.Timeline, error) {
	if days <= 0 {
		days = timeline.DefaultDays
	}

	s.mu.Lock()
	entries, err := s.repo.ReadAll(ctx)
	if err == nil && s.stats == nil && len(entries) > 0 {
		// Store populated by an earlier process.
		s.stats = Statistics(entries, s.now())
	}
	stats := s.stats
	s.mu.Unlock()

	if err != nil {
		return timeline.Timeline{}, timeline.ErrTimelineStorage
	}

	now := s.now()
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	recent := Since(entries, cutoff)

	return timeline.Timeline{
		DailyEmotions:      DailyBreakdown(recent),
		HourlyDistribution: HourlyDistribution(recent),
		EmotionFrequency:   FrequencyTable(recent),
		MoodTrends:         Trend(recent),
		Statistics:         stats,
		TotalEntries:       len(recent),
		DateRange: timeline.DateRange{
			Start: cutoff.Format(entity.TimelineDateLayout),
			End:   now.Format(entity.TimelineDateLayout),
		},
	}, nil
}

// Clear empties the store. Clearing an empty store is a no-op.
func (s *timelineService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return timeline.ErrTimelineStorage
	}
	s.stats = nil
	metrics.TimelineEntries.Set(0)

	s.log.WithFields(log.Fields{
		"request_id": log.RequestIDFrom(ctx),
	}).Info("Timeline cleared")
	return nil
}
