package detector

import (
	"context"
	"fmt"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/classifier"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/face"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
)

// ClassicalConfidence is the fixed confidence of a classical prediction.
const ClassicalConfidence = 0.85

type classicalStrategy struct {
	model     *classifier.Model
	localizer face.Localizer
	landmarks LandmarkExtractor
}

func newClassicalStrategy(model *classifier.Model, localizer face.Localizer, landmarks LandmarkExtractor) *classicalStrategy {
	return &classicalStrategy{model: model, localizer: localizer, landmarks: landmarks}
}

func (s *classicalStrategy) Name() entity.Strategy { return entity.StrategyClassical }

func (s *classicalStrategy) Detect(ctx context.Context, frame Frame) Attempt {
	gray := vision.EqualizeHist(frame.Gray)

	box, ok := entity.Largest(s.localizer.Locate(ctx, gray))
	if !ok {
		return fallThrough("no face")
	}

	var set entity.LandmarkSet
	if s.landmarks != nil {
		set, _ = s.landmarks.Extract(ctx, gray, box)
	}
	vec := ExtractFeatures(gray, box, set)

	d, err := classify(s.model, vec.Values)
	if err != nil {
		return fallThrough(err.Error())
	}
	d.FaceFound = true
	d.Face = &box
	return detected(d)
}

func classify(model *classifier.Model, values []float64) (entity.Detection, error) {
	class, err := model.Predict(values)
	if err != nil {
		return entity.Detection{}, err
	}
	label, ok := entity.LabelForClass(class)
	if !ok {
		return entity.Detection{}, fmt.Errorf("class %d has no label", class)
	}
	return entity.Detection{
		Category:   entity.MapLabel(string(label)),
		Label:      string(label),
		Confidence: ClassicalConfidence,
		Strategy:   entity.StrategyClassical,
	}, nil
}
