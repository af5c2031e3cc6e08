package detection

import (
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
)

const DefaultConfidence = 1.0

// DetectRequest carries either a frame or an emotion detected client side.
// When both are present the frame wins.
type DetectRequest struct {
	Image      string   `json:"image"`
	Emotion    string   `json:"emotion" validate:"omitempty,max=32"`
	Confidence *float64 `json:"confidence" validate:"omitempty,min=0,max=1"`
	Count      int      `json:"count" validate:"omitempty,min=1,max=50"`
	Branch     string   `json:"branch" validate:"omitempty,max=64"`
}

type ClassifyRequest struct {
	Features []float64 `json:"features" validate:"required,min=1"`
}

// Options tunes the recommendations attached to a detection.
type Options struct {
	Count  int
	Branch string
	// SkipTimeline leaves the detection out of the timeline.
	SkipTimeline bool
}

type MusicResult struct {
	recommendation.MusicRecommendation
	Catalog *catalog.Recommendation `json:"catalog,omitempty"`
}

type DetectResponse struct {
	Emotion    entity.Category                  `json:"emotion"`
	Confidence float64                          `json:"confidence"`
	Label      string                           `json:"label"`
	Strategy   entity.Strategy                  `json:"strategy"`
	FaceFound  bool                             `json:"face_found"`
	Face       *entity.BoundingBox              `json:"face,omitempty"`
	Steps      []detector.Step                  `json:"steps,omitempty"`
	Music      MusicResult                      `json:"music"`
	Subject    recommendation.SubjectSuggestion `json:"subject"`
	Logged     bool                             `json:"logged"`
	Timestamp  time.Time                        `json:"timestamp"`
}

// Socket events.
const (
	EventStartDetection   = "start_emotion_detection"
	EventStopDetection    = "stop_emotion_detection"
	EventAnalyzeFrame     = "analyze_frame"
	EventGetTimeline      = "get_emotion_timeline"
	EventConnected        = "connected"
	EventDetectionStarted = "emotion_detection_started"
	EventDetectionStopped = "emotion_detection_stopped"
	EventEmotionResult    = "emotion_result"
	EventEmotionTimeline  = "emotion_timeline"
	EventTimelineError    = "emotion_timeline_error"
	EventError            = "error"
)

type SocketMessage struct {
	Event string      `json:"event"`
	Data  SocketInput `json:"data"`
}

type SocketInput struct {
	Image  string `json:"image"`
	Branch string `json:"branch"`
	Days   int    `json:"days"`
}

type SocketReply struct {
	Event   string      `json:"event"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}
