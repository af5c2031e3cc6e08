package detector

import (
	"context"
	"image"
	"math"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/face"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
)

const (
	// HeuristicMinFace is the smallest face side the heuristic accepts.
	HeuristicMinFace = 50

	heuristicBoost   = 0.2
	heuristicCeiling = 0.9
)

// FaceStats are the hand-picked statistics the heuristic scores on.
// Forehead and Texture are reported but carry no weight.
type FaceStats struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Symmetry   float64 `json:"symmetry"`
	EyeRegion  float64 `json:"eye_region"`
	MouthBand  float64 `json:"mouth_region"`
	Forehead   float64 `json:"forehead_region"`
	Texture    float64 `json:"texture"`
}

func MeasureFace(faceImg *image.Gray) FaceStats {
	mean, std := vision.MeanStd(faceImg)
	s := FaceStats{
		Brightness: mean,
		Contrast:   std / (mean + 1e-7),
		Symmetry:   vision.Symmetry(faceImg),
		Texture:    vision.EdgeDensity(faceImg, 100, 200),
	}

	var ok bool
	if s.EyeRegion, ok = vision.BandMean(faceImg, 0.2, 0.5); !ok {
		s.EyeRegion = mean
	}
	if s.MouthBand, ok = vision.BandMean(faceImg, 0.7, 1.0); !ok {
		s.MouthBand = mean
	}
	if s.Forehead, ok = vision.BandMean(faceImg, 0, 0.3); !ok {
		s.Forehead = mean
	}
	return s
}

// Scores maps each category to its normalised heuristic score.
type Scores map[entity.Category]float64

// Score applies the additive rule table. Within one signal the rules are
// exclusive and checked top to bottom. The result sums to 1 unless no rule
// fired.
func Score(s FaceStats) Scores {
	sc := Scores{}
	for _, c := range entity.Categories {
		sc[c] = 0
	}

	switch {
	case s.Brightness > 150:
		sc[entity.CategoryHappy] += 0.4
		sc[entity.CategoryExcited] += 0.3
	case s.Brightness < 100:
		sc[entity.CategorySad] += 0.4
		sc[entity.CategoryTired] += 0.2
	case s.Brightness < 120:
		sc[entity.CategoryStressed] += 0.3
		sc[entity.CategoryFocused] += 0.2
	}

	switch {
	case s.Contrast > 0.7:
		sc[entity.CategoryExcited] += 0.3
		sc[entity.CategoryFocused] += 0.2
	case s.Contrast < 0.4:
		sc[entity.CategoryCalm] += 0.3
		sc[entity.CategoryTired] += 0.2
	}

	switch {
	case s.Symmetry > 0.8:
		sc[entity.CategoryCalm] += 0.3
		sc[entity.CategoryNeutral] += 0.2
	case s.Symmetry < 0.6:
		sc[entity.CategoryStressed] += 0.3
		sc[entity.CategoryExcited] += 0.2
	}

	switch {
	case s.EyeRegion > s.Brightness+15:
		sc[entity.CategoryExcited] += 0.2
		sc[entity.CategoryFocused] += 0.3
	case s.EyeRegion < s.Brightness-10:
		sc[entity.CategoryTired] += 0.3
	}

	switch {
	case s.MouthBand > s.Brightness+20:
		sc[entity.CategoryHappy] += 0.5
		sc[entity.CategoryExcited] += 0.3
	case s.MouthBand < s.Brightness-15:
		sc[entity.CategorySad] += 0.4
	}

	total := 0.0
	for _, v := range sc {
		total += v
	}
	if total > 0 {
		for c := range sc {
			sc[c] /= total
		}
	}
	return sc
}

// Best is the arg-max; ties go to the category listed first in
// entity.Categories.
func (sc Scores) Best() (entity.Category, float64) {
	best, bestScore := entity.Categories[0], math.Inf(-1)
	for _, c := range entity.Categories {
		if sc[c] > bestScore {
			best, bestScore = c, sc[c]
		}
	}
	return best, bestScore
}

type heuristicStrategy struct {
	localizer face.Localizer
}

func newHeuristicStrategy(localizer face.Localizer) *heuristicStrategy {
	return &heuristicStrategy{localizer: localizer}
}

func (s *heuristicStrategy) Name() entity.Strategy { return entity.StrategyHeuristic }

func (s *heuristicStrategy) Detect(ctx context.Context, frame Frame) Attempt {
	box, ok := entity.Largest(face.MinSide(s.localizer.Locate(ctx, frame.Gray), HeuristicMinFace))
	if !ok {
		return noFace(entity.StrategyHeuristic)
	}

	category, score := Score(MeasureFace(vision.Crop(frame.Gray, box.Rect()))).Best()
	return detected(entity.Detection{
		Category:   category,
		Label:      string(category),
		Confidence: math.Min(score+heuristicBoost, heuristicCeiling),
		Strategy:   entity.StrategyHeuristic,
		FaceFound:  true,
		Face:       &box,
	})
}
