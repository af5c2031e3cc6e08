package timelineService_test

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	timelineRepository "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/repository"
	timelineService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock hands out strictly increasing timestamps one minute apart.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newService(t *testing.T) timelineService.ITimelineService {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo, err := timelineRepository.NewFile(filepath.Join(t.TempDir(), "emotion_data.json"), logger)
	require.NoError(t, err)

	c := &clock{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}
	return timelineService.New(logger, repo, utils.New(), timelineService.WithClock(c.Now))
}

func TestLogRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	logged := []struct {
		emotion    entity.Category
		confidence float64
	}{
		{entity.CategoryHappy, 0.9},
		{entity.CategorySad, 0.3},
		{entity.CategoryFocused, 0.55},
		{entity.CategoryHappy, 0.71},
	}
	for _, l := range logged {
		_, err := svc.Log(ctx, l.emotion, l.confidence, map[string]interface{}{"source": "test"})
		require.NoError(t, err)
	}

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, len(logged))
	for i, l := range logged {
		assert.Equal(t, l.emotion, entries[i].Emotion)
		assert.InDelta(t, l.confidence, entries[i].Confidence, 1e-9)
		assert.Equal(t, "test", entries[i].Extra["source"])
	}
}

func TestLogRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	_, err := svc.Log(context.Background(), entity.Category("bored"), 0.5, nil)
	assert.ErrorIs(t, err, timeline.ErrInvalidEmotion)
}

func TestLogClampsConfidence(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	entry, err := svc.Log(context.Background(), entity.CategoryCalm, 1.7, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, entry.Confidence)
}

func TestGetTimelineFrequency(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, entity.CategoryHappy, 0.9, nil)
	require.NoError(t, err)
	_, err = svc.Log(ctx, entity.CategorySad, 0.3, nil)
	require.NoError(t, err)

	view, err := svc.GetTimeline(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, map[entity.Category]timeline.Frequency{
		entity.CategoryHappy: {Count: 1, Percentage: 50.0},
		entity.CategorySad:   {Count: 1, Percentage: 50.0},
	}, view.EmotionFrequency)
	assert.Equal(t, 2, view.TotalEntries)

	require.NotNil(t, view.Statistics)
	assert.Equal(t, 2, view.Statistics.TotalDetections)
	assert.Equal(t, entity.CategoryHappy, view.Statistics.MostCommonEmotion.Emotion)
	assert.Equal(t, 0.6, view.Statistics.AverageConfidence)
	assert.Equal(t, 1, view.Statistics.UniqueDays)
	assert.Equal(t, 2.0, view.Statistics.DailyAverage)

	day := view.DailyEmotions["2024-03-04"]
	assert.Equal(t, entity.CategoryHappy, day.DominantEmotion)
	assert.Equal(t, 2, day.TotalDetections)

	assert.Equal(t, "2024-02-26", view.DateRange.Start)
	assert.Equal(t, "2024-03-04", view.DateRange.End)
}

func TestGetTimelineHourlyBuckets(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Log(ctx, entity.CategoryNeutral, 0.5, nil)
		require.NoError(t, err)
	}

	view, err := svc.GetTimeline(ctx, 1)
	require.NoError(t, err)
	require.Len(t, view.HourlyDistribution, 24)

	total := 0
	for h, bucket := range view.HourlyDistribution {
		assert.Equal(t, h, bucket.Hour)
		sum := 0
		for _, n := range bucket.Emotions {
			sum += n
		}
		assert.Equal(t, sum, bucket.Total)
		total += bucket.Total
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 5, view.HourlyDistribution[9].Total)
}

func TestGetTimelineEmpty(t *testing.T) {
	t.Parallel()

	view, err := newService(t).GetTimeline(context.Background(), 0)
	require.NoError(t, err)

	assert.Len(t, view.HourlyDistribution, 24)
	assert.Empty(t, view.EmotionFrequency)
	assert.Equal(t, timeline.TrendInsufficientData, view.MoodTrends.Trend)
	assert.Nil(t, view.MoodTrends.Change)
	assert.Nil(t, view.Statistics)
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, entity.CategoryTired, 0.4, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))
	first, err := svc.GetTimeline(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))
	second, err := svc.GetTimeline(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 0, first.TotalEntries)
	assert.Nil(t, first.Statistics)
	assert.Equal(t, first.TotalEntries, second.TotalEntries)
	assert.Equal(t, first.EmotionFrequency, second.EmotionFrequency)
	assert.Equal(t, first.Statistics, second.Statistics)

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConcurrentLogsAreNotLost(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Log(ctx, entity.CategoryExcited, 0.8, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := svc.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, writers)
}

func TestSessionSummary(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	ctx := context.Background()

	empty, err := svc.SessionSummary(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "No emotions detected in current session", empty.Message)
	assert.Equal(t, timeline.DefaultSessionMinutes, empty.SessionDuration)

	for _, c := range []entity.Category{entity.CategoryStressed, entity.CategoryStressed} {
		_, err := svc.Log(ctx, c, 0.5, nil)
		require.NoError(t, err)
	}

	summary, err := svc.SessionSummary(ctx, 60)
	require.NoError(t, err)
	assert.Empty(t, summary.Message)
	assert.Equal(t, entity.CategoryStressed, summary.DominantEmotion)
	assert.Equal(t, 2, summary.TotalDetections)
	assert.Equal(t, 1.0, summary.SessionMoodScore)
	assert.Equal(t, 0.5, summary.AverageConfidence)
	require.Len(t, summary.Recommendations, 4)
	assert.Equal(t, "Consider staying closer to the camera for better emotion detection.", summary.Recommendations[3])
}
