package detector

import (
	"context"
	"image"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
)

// NoFaceConfidence is reported by every strategy when no face is found.
const NoFaceConfidence = 0.0

type Outcome int

const (
	// Detected ends the chain with Attempt.Result.
	Detected Outcome = iota
	// FallThrough hands this call to the next strategy; the strategy stays
	// enabled for later calls.
	FallThrough
	// Unavailable means the strategy's backing model never initialised.
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Detected:
		return "detected"
	case FallThrough:
		return "fall_through"
	default:
		return "unavailable"
	}
}

type Attempt struct {
	Outcome Outcome
	Result  entity.Detection
	Reason  string
}

func detected(d entity.Detection) Attempt {
	d.Confidence = entity.ClampConfidence(d.Confidence)
	return Attempt{Outcome: Detected, Result: d}
}

func fallThrough(reason string) Attempt {
	return Attempt{Outcome: FallThrough, Reason: reason}
}

func noFace(s entity.Strategy) Attempt {
	return detected(entity.Detection{
		Category:   entity.CategoryNeutral,
		Label:      string(entity.LabelNoFace),
		Confidence: NoFaceConfidence,
		Strategy:   s,
	})
}

// Frame carries one decoded webcam image and its grayscale rendition,
// both with bounds starting at the origin.
type Frame struct {
	Color image.Image
	Gray  *image.Gray
}

// Strategy is one link of the classifier chain.
type Strategy interface {
	Name() entity.Strategy
	Detect(ctx context.Context, frame Frame) Attempt
}

// LandmarkExtractor refines a face box into 68 points when it can.
type LandmarkExtractor interface {
	Extract(ctx context.Context, gray *image.Gray, box entity.BoundingBox) (entity.LandmarkSet, bool)
}
