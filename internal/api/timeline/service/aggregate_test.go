package timelineService

import (
	"testing"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesOf(cs ...entity.Category) []entity.TimelineEntry {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	out := make([]entity.TimelineEntry, len(cs))
	for i, c := range cs {
		out[i] = entity.NewTimelineEntry("", c, 0.5, start.Add(time.Duration(i)*time.Hour), nil)
	}
	return out
}

func TestTrend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []entity.TimelineEntry
		trend   string
		change  float64
	}{
		{
			name:    "improving",
			entries: entriesOf(entity.CategoryStressed, entity.CategorySad, entity.CategoryHappy, entity.CategoryHappy),
			trend:   timeline.TrendImproving,
			change:  2.5,
		},
		{
			name:    "declining",
			entries: entriesOf(entity.CategoryHappy, entity.CategoryStressed),
			trend:   timeline.TrendDeclining,
			change:  -3,
		},
		{
			name:    "stable with unscored categories",
			entries: entriesOf(entity.CategoryCalm, entity.CategoryFocused),
			trend:   timeline.TrendStable,
			change:  0,
		},
		{
			name:    "odd count puts the extra entry in the later half",
			entries: entriesOf(entity.CategoryNeutral, entity.CategoryHappy, entity.CategoryStressed),
			trend:   timeline.TrendDeclining,
			change:  -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Trend(tt.entries)
			assert.Equal(t, tt.trend, got.Trend)
			require.NotNil(t, got.Change)
			assert.InDelta(t, tt.change, *got.Change, 1e-9)
		})
	}
}

func TestTrendSortsChronologically(t *testing.T) {
	t.Parallel()

	es := entriesOf(entity.CategoryStressed, entity.CategoryHappy)
	es[0], es[1] = es[1], es[0]

	assert.Equal(t, timeline.TrendImproving, Trend(es).Trend)
}

func TestTrendNeedsTwoEntries(t *testing.T) {
	t.Parallel()

	got := Trend(entriesOf(entity.CategoryHappy))
	assert.Equal(t, timeline.TrendInsufficientData, got.Trend)
	assert.Nil(t, got.FirstHalfScore)
}

func TestDominantTieGoesToFirstLogged(t *testing.T) {
	t.Parallel()

	daily := DailyBreakdown(entriesOf(entity.CategorySad, entity.CategoryHappy, entity.CategoryHappy, entity.CategorySad))
	assert.Equal(t, entity.CategorySad, daily["2024-05-01"].DominantEmotion)
}

func TestFrequencyRounding(t *testing.T) {
	t.Parallel()

	freq := FrequencyTable(entriesOf(entity.CategoryHappy, entity.CategorySad, entity.CategorySad))
	assert.Equal(t, 33.33, freq[entity.CategoryHappy].Percentage)
	assert.Equal(t, 66.67, freq[entity.CategorySad].Percentage)
}

func TestSince(t *testing.T) {
	t.Parallel()

	es := entriesOf(entity.CategoryHappy, entity.CategorySad, entity.CategoryCalm)
	got := Since(es, es[1].Timestamp)
	require.Len(t, got, 2)
	assert.Equal(t, entity.CategorySad, got[0].Emotion)
}
