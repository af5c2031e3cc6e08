package timeline

import "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/response"

var (
	ErrInvalidEmotion  = response.NewError(400, "unknown emotion category")
	ErrTimelineStorage = response.NewError(500, "failed to access emotion timeline")
)
