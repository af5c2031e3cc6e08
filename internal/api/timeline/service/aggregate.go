package timelineService

import (
	"math"
	"sort"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
)

// UnknownMoodScore applies to categories outside moodScores.
const UnknownMoodScore = 2.5

var moodScores = map[entity.Category]float64{
	entity.CategoryHappy:    4,
	entity.CategoryNeutral:  3,
	entity.CategorySad:      2,
	entity.CategoryStressed: 1,
}

func MoodScore(c entity.Category) float64 {
	if v, ok := moodScores[c]; ok {
		return v
	}
	return UnknownMoodScore
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Since keeps entries logged at or after cutoff, in their stored order.
func Since(entries []entity.TimelineEntry, cutoff time.Time) []entity.TimelineEntry {
	out := make([]entity.TimelineEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// tally counts categories and remembers first-seen order so that ties go to
// the category logged first.
type tally struct {
	counts map[entity.Category]int
	order  []entity.Category
}

func newTally() *tally {
	return &tally{counts: map[entity.Category]int{}}
}

func (t *tally) add(c entity.Category) {
	if _, ok := t.counts[c]; !ok {
		t.order = append(t.order, c)
	}
	t.counts[c]++
}

func (t *tally) dominant() (entity.Category, int) {
	var best entity.Category
	bestCount := 0
	for _, c := range t.order {
		if t.counts[c] > bestCount {
			best, bestCount = c, t.counts[c]
		}
	}
	return best, bestCount
}

func DailyBreakdown(entries []entity.TimelineEntry) map[string]timeline.DailyEmotions {
	days := map[string]*tally{}
	for _, e := range entries {
		t, ok := days[e.Date]
		if !ok {
			t = newTally()
			days[e.Date] = t
		}
		t.add(e.Emotion)
	}

	out := make(map[string]timeline.DailyEmotions, len(days))
	for date, t := range days {
		dominant, _ := t.dominant()
		total := 0
		for _, n := range t.counts {
			total += n
		}
		out[date] = timeline.DailyEmotions{
			DominantEmotion: dominant,
			EmotionCounts:   t.counts,
			TotalDetections: total,
		}
	}
	return out
}

// HourlyDistribution always returns 24 buckets indexed by hour.
func HourlyDistribution(entries []entity.TimelineEntry) []timeline.HourlyBucket {
	buckets := make([]timeline.HourlyBucket, 24)
	for h := range buckets {
		buckets[h] = timeline.HourlyBucket{Hour: h, Emotions: map[entity.Category]int{}}
	}
	for _, e := range entries {
		if e.Hour < 0 || e.Hour > 23 {
			continue
		}
		buckets[e.Hour].Emotions[e.Emotion]++
		buckets[e.Hour].Total++
	}
	return buckets
}

func FrequencyTable(entries []entity.TimelineEntry) map[entity.Category]timeline.Frequency {
	counts := map[entity.Category]int{}
	for _, e := range entries {
		counts[e.Emotion]++
	}

	out := make(map[entity.Category]timeline.Frequency, len(counts))
	for c, n := range counts {
		out[c] = timeline.Frequency{
			Count:      n,
			Percentage: round2(float64(n) / float64(len(entries)) * 100),
		}
	}
	return out
}

// Trend compares the mean mood score of the chronologically earlier half
// against the later half, split at the midpoint index.
func Trend(entries []entity.TimelineEntry) timeline.MoodTrend {
	if len(entries) < 2 {
		return timeline.MoodTrend{Trend: timeline.TrendInsufficientData}
	}

	sorted := append([]entity.TimelineEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	mid := len(sorted) / 2
	first := meanMood(sorted[:mid])
	second := meanMood(sorted[mid:])

	trend := timeline.TrendStable
	switch {
	case second > first:
		trend = timeline.TrendImproving
	case second < first:
		trend = timeline.TrendDeclining
	}

	first, second = round2(first), round2(second)
	change := round2(second - first)
	return timeline.MoodTrend{
		Trend:           trend,
		FirstHalfScore:  &first,
		SecondHalfScore: &second,
		Change:          &change,
	}
}

func meanMood(entries []entity.TimelineEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range entries {
		sum += MoodScore(e.Emotion)
	}
	return sum / float64(len(entries))
}

// Statistics summarises the whole store; nil when it is empty.
func Statistics(entries []entity.TimelineEntry, now time.Time) *entity.TimelineStatistics {
	if len(entries) == 0 {
		return nil
	}

	t := newTally()
	days := map[string]struct{}{}
	confidence := 0.0
	for _, e := range entries {
		t.add(e.Emotion)
		days[e.Date] = struct{}{}
		confidence += e.Confidence
	}
	dominant, count := t.dominant()

	return &entity.TimelineStatistics{
		TotalDetections:   len(entries),
		MostCommonEmotion: &entity.EmotionCount{Emotion: dominant, Count: count},
		AverageConfidence: round2(confidence / float64(len(entries))),
		DailyAverage:      round2(float64(len(entries)) / float64(len(days))),
		UniqueDays:        len(days),
		LastUpdated:       now,
	}
}
