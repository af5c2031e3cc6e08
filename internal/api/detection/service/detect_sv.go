package detectionService

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/classifier"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
)

// Detect runs the chain on req.Image, or trusts req.Emotion when no image is
// sent. A frame that is not valid base64 is treated like an empty frame.
func (s *detectionService) Detect(ctx context.Context, req detection.DetectRequest) (detection.DetectResponse, error) {
	opts := detection.Options{Count: req.Count, Branch: req.Branch}

	if strings.TrimSpace(req.Image) != "" {
		frame, err := vision.DecodeBase64(req.Image)
		if err != nil {
			s.log.WithFields(log.Fields{
				"request_id": log.RequestIDFrom(ctx),
				"error":      err.Error(),
			}).Warn("Frame payload is not valid base64")
		}
		return s.DetectFrame(ctx, frame, opts), nil
	}

	if strings.TrimSpace(req.Emotion) == "" {
		return detection.DetectResponse{}, detection.ErrMissingInput
	}

	category, ok := entity.LookupLabel(req.Emotion)
	if !ok {
		return detection.DetectResponse{}, detection.ErrUnknownEmotion
	}

	confidence := detection.DefaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	det := entity.Detection{
		Category:   category,
		Label:      strings.ToLower(strings.TrimSpace(req.Emotion)),
		Confidence: entity.ClampConfidence(confidence),
		Strategy:   entity.StrategyManual,
	}
	return s.respond(ctx, det, nil, opts), nil
}

func (s *detectionService) DetectFrame(ctx context.Context, frame []byte, opts detection.Options) detection.DetectResponse {
	res := s.detector.DetectBytes(ctx, frame)
	return s.respond(ctx, res.Detection, res.Steps, opts)
}

func (s *detectionService) Classify(ctx context.Context, features []float64) (entity.Detection, error) {
	det, err := s.detector.Classify(features)
	switch {
	case err == nil:
		return det, nil
	case errors.Is(err, detector.ErrClassifierUnavailable), errors.Is(err, classifier.ErrNotTrained):
		return entity.Detection{}, detection.ErrClassifierUnavailable
	case errors.Is(err, classifier.ErrDimension):
		return entity.Detection{}, detection.ErrFeatureDimension
	default:
		s.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"error":      err.Error(),
		}).Error("Classical classifier failed")
		return entity.Detection{}, err
	}
}

func (s *detectionService) Capabilities() detector.Capabilities {
	return s.detector.Capabilities()
}

func (s *detectionService) Timeline(ctx context.Context, days int) (timeline.Timeline, error) {
	return s.timeline.GetTimeline(ctx, days)
}

// respond attaches music and study suggestions and records the detection.
// A timeline failure is logged and reported through Logged only.
func (s *detectionService) respond(ctx context.Context, det entity.Detection, steps []detector.Step, opts detection.Options) detection.DetectResponse {
	now := s.now()

	count := opts.Count
	if count <= 0 {
		count = recommendation.DefaultTrackCount
	}

	resp := detection.DetectResponse{
		Emotion:    det.Category,
		Confidence: math.Round(det.Confidence*100) / 100,
		Label:      det.Label,
		Strategy:   det.Strategy,
		FaceFound:  det.FaceFound,
		Face:       det.Face,
		Steps:      steps,
		Music: detection.MusicResult{
			MusicRecommendation: s.recommender.Recommend(det.Category, count),
		},
		Subject:   s.recommender.Suggest(det.Category, opts.Branch, now),
		Timestamp: now,
	}

	if rec, err := s.recommender.Catalog(ctx, det.Category); err == nil {
		resp.Music.Catalog = &rec
	}

	if opts.SkipTimeline {
		return resp
	}

	extra := map[string]interface{}{
		"strategy": string(det.Strategy),
		"label":    det.Label,
	}
	if _, err := s.timeline.Log(ctx, det.Category, det.Confidence, extra); err != nil {
		s.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"emotion":    det.Category,
			"error":      err.Error(),
		}).Error("Failed to record detection in timeline")
		return resp
	}
	resp.Logged = true

	return resp
}
