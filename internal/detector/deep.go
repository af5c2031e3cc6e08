package detector

import (
	"context"
	"errors"
	"image"
	"math"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/face"
	"golang.org/x/image/draw"
)

// ErrNoEmotion is returned by an EmotionModel that ran but produced no label.
var ErrNoEmotion = errors.New("model returned no emotion")

// EmotionModel is a pretrained facial-expression recognizer. Predict gets
// the colour crop of a single face.
type EmotionModel interface {
	Name() string
	Ready(ctx context.Context) error
	Predict(ctx context.Context, face image.Image) (label string, score float64, err error)
}

const (
	deepBoost   = 0.2
	deepCeiling = 0.95
)

type deepStrategy struct {
	model     EmotionModel
	localizer face.Localizer
}

func newDeepStrategy(model EmotionModel, localizer face.Localizer) *deepStrategy {
	return &deepStrategy{model: model, localizer: localizer}
}

func (s *deepStrategy) Name() entity.Strategy { return entity.StrategyDeep }

func (s *deepStrategy) Detect(ctx context.Context, frame Frame) Attempt {
	box, ok := entity.Largest(s.localizer.Locate(ctx, frame.Gray))
	if !ok {
		return noFace(entity.StrategyDeep)
	}

	label, score, err := s.model.Predict(ctx, crop(frame.Color, box))
	if errors.Is(err, ErrNoEmotion) || (err == nil && label == "") {
		return noFace(entity.StrategyDeep)
	}
	if err != nil {
		return fallThrough(err.Error())
	}

	return detected(entity.Detection{
		Category:   entity.MapLabel(label),
		Label:      label,
		Confidence: math.Min(score+deepBoost, deepCeiling),
		Strategy:   entity.StrategyDeep,
		FaceFound:  true,
		Face:       &box,
	})
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// crop cuts box out of img. Boxes are relative to the origin, so they are
// shifted by the image's own minimum point. Images without SubImage are
// copied into a fresh RGBA anchored at the origin.
func crop(img image.Image, box entity.BoundingBox) image.Image {
	r := box.Rect().Add(img.Bounds().Min).Intersect(img.Bounds())
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
