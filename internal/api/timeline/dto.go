package timeline

import "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"

const (
	DefaultDays           = 7
	MaxDays               = 365
	DefaultSessionMinutes = 60

	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

type DailyEmotions struct {
	DominantEmotion entity.Category         `json:"dominant_emotion"`
	EmotionCounts   map[entity.Category]int `json:"emotion_counts"`
	TotalDetections int                     `json:"total_detections"`
}

type HourlyBucket struct {
	Hour     int                     `json:"hour"`
	Emotions map[entity.Category]int `json:"emotions"`
	Total    int                     `json:"total"`
}

type Frequency struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MoodTrend carries scores only when there were enough entries to compare.
type MoodTrend struct {
	Trend           string   `json:"trend"`
	FirstHalfScore  *float64 `json:"first_half_score,omitempty"`
	SecondHalfScore *float64 `json:"second_half_score,omitempty"`
	Change          *float64 `json:"change,omitempty"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Timeline struct {
	DailyEmotions      map[string]DailyEmotions      `json:"daily_emotions"`
	HourlyDistribution []HourlyBucket                `json:"hourly_distribution"`
	EmotionFrequency   map[entity.Category]Frequency `json:"emotion_frequency"`
	MoodTrends         MoodTrend                     `json:"mood_trends"`
	Statistics         *entity.TimelineStatistics    `json:"statistics"`
	TotalEntries       int                           `json:"total_entries"`
	DateRange          DateRange                     `json:"date_range"`
}

type SessionSummary struct {
	Message             string                  `json:"message,omitempty"`
	SessionDuration     int                     `json:"session_duration"`
	TotalDetections     int                     `json:"total_detections"`
	DominantEmotion     entity.Category         `json:"dominant_emotion,omitempty"`
	EmotionDistribution map[entity.Category]int `json:"emotion_distribution,omitempty"`
	AverageConfidence   float64                 `json:"average_confidence"`
	SessionMoodScore    float64                 `json:"session_mood_score"`
	Recommendations     []string                `json:"recommendations,omitempty"`
}

type LogRequest struct {
	Emotion    string                 `json:"emotion" validate:"required"`
	Confidence *float64               `json:"confidence" validate:"omitempty,min=0,max=1"`
	Extra      map[string]interface{} `json:"extra"`
}

type TimelineQuery struct {
	Days int `query:"days" validate:"omitempty,min=1,max=365"`
}

type SessionQuery struct {
	Minutes int `query:"minutes" validate:"omitempty,min=1,max=1440"`
}
