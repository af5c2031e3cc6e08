package timelineService

import (
	"context"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
)

const (
	busySessionDetections   = 10
	sparseSessionDetections = 3
)

var sessionAdvice = map[entity.Category][]string{
	entity.CategoryHappy: {
		"Great energy! Consider tackling challenging problems.",
		"Your positive mood is perfect for creative work.",
		"Take advantage of this motivation for new learning.",
	},
	entity.CategoryNeutral: {
		"Balanced state - good for steady progress.",
		"Continue with regular study routine.",
		"Maintain this focused approach.",
	},
	entity.CategorySad: {
		"Consider taking a short break or doing light review.",
		"Focus on familiar topics to build confidence.",
		"Remember that progress takes time.",
	},
	entity.CategoryStressed: {
		"Take a break and try some relaxation techniques.",
		"Switch to easier topics to reduce pressure.",
		"Consider shorter study sessions.",
	},
}

// SessionSummary looks at entries from the last minutes.
func (s *timelineService) SessionSummary(ctx context.Context, minutes int) (timeline.SessionSummary, error) {
	if minutes <= 0 {
		minutes = timeline.DefaultSessionMinutes
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return timeline.SessionSummary{}, err
	}

	recent := Since(entries, s.now().Add(-time.Duration(minutes)*time.Minute))
	if len(recent) == 0 {
		return timeline.SessionSummary{
			Message:         "No emotions detected in current session",
			SessionDuration: minutes,
		}, nil
	}

	t := newTally()
	confidence := 0.0
	for _, e := range recent {
		t.add(e.Emotion)
		confidence += e.Confidence
	}
	dominant, _ := t.dominant()

	return timeline.SessionSummary{
		SessionDuration:     minutes,
		TotalDetections:     len(recent),
		DominantEmotion:     dominant,
		EmotionDistribution: t.counts,
		AverageConfidence:   round2(confidence / float64(len(recent))),
		SessionMoodScore:    round2(meanMood(recent)),
		Recommendations:     sessionRecommendations(dominant, len(recent)),
	}, nil
}

func sessionRecommendations(dominant entity.Category, detections int) []string {
	base, ok := sessionAdvice[dominant]
	if !ok {
		base = []string{"Continue studying at your own pace."}
	}
	out := append([]string(nil), base...)

	switch {
	case detections > busySessionDetections:
		out = append(out, "High detection frequency - your emotions are being tracked well!")
	case detections < sparseSessionDetections:
		out = append(out, "Consider staying closer to the camera for better emotion detection.")
	}
	return out
}
