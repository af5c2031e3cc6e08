package detectionService

import (
	"context"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection"
	recommendationService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	timelineService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/sirupsen/logrus"
)

// Detector is satisfied by *detector.Chain.
type Detector interface {
	DetectBytes(ctx context.Context, data []byte) detector.Result
	Classify(values []float64) (entity.Detection, error)
	Capabilities() detector.Capabilities
}

type IDetectionService interface {
	Detect(ctx context.Context, req detection.DetectRequest) (detection.DetectResponse, error)
	DetectFrame(ctx context.Context, frame []byte, opts detection.Options) detection.DetectResponse
	Classify(ctx context.Context, features []float64) (entity.Detection, error)
	Capabilities() detector.Capabilities
	Timeline(ctx context.Context, days int) (timeline.Timeline, error)
}

type detectionService struct {
	log         *logrus.Logger
	detector    Detector
	recommender recommendationService.IRecommendationService
	timeline    timelineService.ITimelineService
	now         func() time.Time
}

func New(
	log *logrus.Logger,
	detector Detector,
	recommender recommendationService.IRecommendationService,
	timeline timelineService.ITimelineService,
) IDetectionService {
	return &detectionService{
		log:         log,
		detector:    detector,
		recommender: recommender,
		timeline:    timeline,
		now:         time.Now,
	}
}
