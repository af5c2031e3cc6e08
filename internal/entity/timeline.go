package entity

import "time"

const (
	TimelineDateLayout = "2006-01-02"
	TimelineTimeLayout = "15:04:05"
)

type TimelineEntry struct {
	ID         string                 `json:"id" db:"id"`
	Emotion    Category               `json:"emotion" db:"emotion"`
	Confidence float64                `json:"confidence" db:"confidence"`
	Timestamp  time.Time              `json:"timestamp" db:"timestamp"`
	Date       string                 `json:"date" db:"date"`
	Time       string                 `json:"time" db:"time"`
	Hour       int                    `json:"hour" db:"hour"`
	DayOfWeek  string                 `json:"day_of_week" db:"day_of_week"`
	Extra      map[string]interface{} `json:"extra,omitempty" db:"-"`
}

// NewTimelineEntry derives the calendar fields from at in its own location.
func NewTimelineEntry(id string, emotion Category, confidence float64, at time.Time, extra map[string]interface{}) TimelineEntry {
	return TimelineEntry{
		ID:         id,
		Emotion:    emotion,
		Confidence: ClampConfidence(confidence),
		Timestamp:  at,
		Date:       at.Format(TimelineDateLayout),
		Time:       at.Format(TimelineTimeLayout),
		Hour:       at.Hour(),
		DayOfWeek:  at.Weekday().String(),
		Extra:      extra,
	}
}

type EmotionCount struct {
	Emotion Category `json:"emotion"`
	Count   int      `json:"count"`
}

type TimelineStatistics struct {
	TotalDetections   int           `json:"total_detections"`
	MostCommonEmotion *EmotionCount `json:"most_common_emotion"`
	AverageConfidence float64       `json:"average_confidence"`
	DailyAverage      float64       `json:"daily_average"`
	UniqueDays        int           `json:"unique_days"`
	LastUpdated       time.Time     `json:"last_updated"`
}
