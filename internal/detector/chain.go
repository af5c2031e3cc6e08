// Package detector turns a webcam frame into one of the eight emotion
// categories by walking a fixed-priority chain of strategies.
package detector

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/metrics"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/classifier"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/face"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
	"github.com/sirupsen/logrus"
)

const (
	// DarkFrameThreshold is the mean gray level below which a frame is
	// treated as an obstructed or dead camera.
	DarkFrameThreshold  = 20.0
	DarkFrameConfidence = 0.1
)

var ErrClassifierUnavailable = errors.New("classical classifier is not loaded")

// Capabilities records which strategies initialised. It is fixed when the
// chain is built.
type Capabilities struct {
	Deep               bool   `json:"deep_model"`
	DeepBackend        string `json:"deep_backend,omitempty"`
	Classical          bool   `json:"classical_model"`
	ClassicalAlgorithm string `json:"classical_algorithm,omitempty"`
	Landmarks          bool   `json:"landmarks"`
	Heuristic          bool   `json:"heuristic"`
}

type Options struct {
	// Localizer is required.
	Localizer  face.Localizer
	Landmarks  LandmarkExtractor
	Model      EmotionModel
	Classifier *classifier.Model
}

// Step is one strategy's verdict during a single Detect call.
type Step struct {
	Strategy entity.Strategy `json:"strategy"`
	Outcome  string          `json:"outcome"`
	Reason   string          `json:"reason,omitempty"`
}

type Result struct {
	entity.Detection
	Steps []Step `json:"steps"`
}

// link is one slot of the chain. A nil strategy marks a backend that
// failed to initialise; it still occupies its priority position.
type link struct {
	name     entity.Strategy
	strategy Strategy
}

type Chain struct {
	links      []link
	caps       Capabilities
	classifier *classifier.Model
	log        *logrus.Logger
}

type landmarkProbe interface {
	LandmarksAvailable() bool
}

// NewChain probes every optional backend once. A backend that fails its
// probe is left out for the lifetime of the chain; the heuristic is always
// present.
func NewChain(ctx context.Context, logger *logrus.Logger, opts Options) *Chain {
	c := &Chain{log: logger, classifier: opts.Classifier}
	c.caps.Heuristic = true

	if opts.Landmarks != nil {
		c.caps.Landmarks = true
		if p, ok := opts.Landmarks.(landmarkProbe); ok {
			c.caps.Landmarks = p.LandmarksAvailable()
		}
	}
	landmarks := opts.Landmarks
	if !c.caps.Landmarks {
		landmarks = nil
	}

	if opts.Model != nil {
		if err := opts.Model.Ready(ctx); err != nil {
			logger.WithFields(log.Fields{
				"backend": opts.Model.Name(),
				"error":   err.Error(),
			}).Warn("Deep emotion model unavailable, skipping it")
		} else {
			c.caps.Deep = true
			c.caps.DeepBackend = opts.Model.Name()
		}
	}
	deep := link{name: entity.StrategyDeep}
	if c.caps.Deep {
		deep.strategy = newDeepStrategy(opts.Model, opts.Localizer)
	}

	classical := link{name: entity.StrategyClassical}
	if opts.Classifier != nil {
		c.caps.Classical = true
		c.caps.ClassicalAlgorithm = string(opts.Classifier.Algorithm)
		classical.strategy = newClassicalStrategy(opts.Classifier, opts.Localizer, landmarks)
	} else {
		logger.Info("Classical emotion classifier not loaded, skipping it")
	}

	c.links = []link{
		deep,
		classical,
		{name: entity.StrategyHeuristic, strategy: newHeuristicStrategy(opts.Localizer)},
	}

	metrics.SetStrategyAvailable(string(entity.StrategyDeep), c.caps.Deep)
	metrics.SetStrategyAvailable(string(entity.StrategyClassical), c.caps.Classical)
	metrics.SetStrategyAvailable(string(entity.StrategyHeuristic), true)

	logger.WithFields(log.Fields{
		"deep":      c.caps.Deep,
		"classical": c.caps.Classical,
		"landmarks": c.caps.Landmarks,
	}).Info("Emotion classifier chain ready")

	return c
}

func (c *Chain) Capabilities() Capabilities {
	return c.caps
}

// Detect runs the dark-frame check and then each strategy in priority order
// until one produces a result.
func (c *Chain) Detect(ctx context.Context, img image.Image) Result {
	start := time.Now()
	res := c.detect(ctx, img)
	metrics.RecordDetection(string(res.Strategy), string(res.Category), time.Since(start))
	return res
}

func (c *Chain) detect(ctx context.Context, img image.Image) Result {
	frame := Frame{Color: img, Gray: vision.ToGray(img)}

	var res Result
	if vision.Mean(frame.Gray) < DarkFrameThreshold {
		c.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
		}).Warn("Camera feed appears black or obstructed")
		res.Detection = entity.Detection{
			Category:   entity.CategoryNeutral,
			Label:      string(entity.LabelNeutral),
			Confidence: DarkFrameConfidence,
			Strategy:   entity.StrategyPrecheck,
		}
		res.Steps = append(res.Steps, Step{Strategy: entity.StrategyPrecheck, Outcome: Detected.String()})
		return res
	}

	for _, l := range c.links {
		if l.strategy == nil {
			res.Steps = append(res.Steps, Step{Strategy: l.name, Outcome: Unavailable.String()})
			continue
		}

		a := c.attempt(ctx, l, frame)
		res.Steps = append(res.Steps, Step{Strategy: l.name, Outcome: a.Outcome.String(), Reason: a.Reason})
		if a.Outcome == Detected {
			res.Detection = a.Result
			return res
		}

		metrics.RecordFallThrough(string(l.name), a.Reason)
		c.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"strategy":   l.name,
			"reason":     a.Reason,
		}).Debug("Strategy fell through")
	}

	// The heuristic never falls through; this only guards a misbuilt chain.
	res.Detection = entity.Detection{
		Category: entity.CategoryNeutral,
		Label:    string(entity.LabelNoFace),
		Strategy: entity.StrategyHeuristic,
	}
	return res
}

// attempt runs one strategy. A panic inside it becomes a fall-through for
// this call only.
func (c *Chain) attempt(ctx context.Context, l link, frame Frame) (a Attempt) {
	defer func() {
		if r := recover(); r != nil {
			c.log.WithFields(log.Fields{
				"request_id": log.RequestIDFrom(ctx),
				"strategy":   l.name,
				"panic":      fmt.Sprint(r),
			}).Error("Strategy panicked")
			a = fallThrough(fmt.Sprintf("strategy panicked: %v", r))
		}
	}()
	return l.strategy.Detect(ctx, frame)
}

// DetectBytes decodes an encoded image and runs Detect. A frame that cannot
// be decoded is reported as no face rather than as an error.
func (c *Chain) DetectBytes(ctx context.Context, data []byte) Result {
	img, err := vision.Decode(data)
	if err != nil {
		c.log.WithFields(log.Fields{
			"request_id": log.RequestIDFrom(ctx),
			"error":      err.Error(),
		}).Warn("Frame could not be decoded")
		res := Result{Detection: entity.Detection{
			Category:   entity.CategoryNeutral,
			Label:      string(entity.LabelNoFace),
			Confidence: NoFaceConfidence,
			Strategy:   entity.StrategyPrecheck,
		}}
		res.Steps = []Step{{Strategy: entity.StrategyPrecheck, Outcome: Detected.String(), Reason: "undecodable frame"}}
		metrics.RecordDetection(string(res.Strategy), string(res.Category), 0)
		return res
	}
	return c.Detect(ctx, img)
}

// Classify feeds a precomputed feature vector to the classical model.
func (c *Chain) Classify(values []float64) (entity.Detection, error) {
	if c.classifier == nil {
		return entity.Detection{}, ErrClassifierUnavailable
	}
	return classify(c.classifier, values)
}
