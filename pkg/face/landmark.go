package face

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
	"github.com/sirupsen/logrus"
)

// LandmarkService predicts 68 facial points for a cropped face image.
// Returned points are relative to the crop.
type LandmarkService interface {
	Ping(ctx context.Context) error
	DetectLandmarks(ctx context.Context, face []byte) ([]entity.Point, error)
}

// Detector pairs the cascade localizer with an optional landmark service.
// The service is probed once on construction; when the probe fails the
// detector stays cascade-only for its whole lifetime.
type Detector struct {
	cascade   Localizer
	landmarks LandmarkService
	log       *logrus.Logger
}

func NewDetector(ctx context.Context, cascade Localizer, svc LandmarkService, logger *logrus.Logger) *Detector {
	d := &Detector{cascade: cascade, log: logger}
	if svc == nil {
		logger.Info("Landmark service not configured, using cascade-only face detection")
		return d
	}
	if err := svc.Ping(ctx); err != nil {
		logger.WithFields(log.Fields{
			"error": err.Error(),
		}).Warn("Landmark service unavailable, using cascade-only face detection")
		return d
	}
	d.landmarks = svc
	return d
}

func (d *Detector) Locate(ctx context.Context, gray *image.Gray) []entity.BoundingBox {
	return d.cascade.Locate(ctx, gray)
}

func (d *Detector) LandmarksAvailable() bool {
	return d.landmarks != nil
}

// Extract returns the 68 landmarks of the face in box, in frame
// coordinates. It reports false on any failure so the caller can switch to
// pixel features.
func (d *Detector) Extract(ctx context.Context, gray *image.Gray, box entity.BoundingBox) (entity.LandmarkSet, bool) {
	if d.landmarks == nil || box.Empty() {
		return nil, false
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, vision.Crop(gray, box.Rect())); err != nil {
		return nil, false
	}

	points, err := d.landmarks.DetectLandmarks(ctx, buf.Bytes())
	if err != nil {
		d.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"error":      err.Error(),
		}).Debug("Landmark extraction failed")
		return nil, false
	}

	set := make(entity.LandmarkSet, len(points))
	for i, p := range points {
		set[i] = entity.Point{X: p.X + float64(box.X), Y: p.Y + float64(box.Y)}
	}
	if !set.Complete() {
		return nil, false
	}
	return set, true
}
