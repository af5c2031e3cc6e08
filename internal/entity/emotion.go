package entity

import (
	"math"
	"strings"
)

type Category string

const (
	CategoryHappy    Category = "happy"
	CategorySad      Category = "sad"
	CategoryStressed Category = "stressed"
	CategoryNeutral  Category = "neutral"
	CategoryExcited  Category = "excited"
	CategoryCalm     Category = "calm"
	CategoryFocused  Category = "focused"
	CategoryTired    Category = "tired"
)

// Categories is ordered; heuristic ties resolve to the earliest entry.
var Categories = []Category{
	CategoryHappy,
	CategorySad,
	CategoryStressed,
	CategoryNeutral,
	CategoryExcited,
	CategoryCalm,
	CategoryFocused,
	CategoryTired,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory normalises case and whitespace. The second return is false
// when the value is not one of the eight categories.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	return c, c.Valid()
}

type RawLabel string

const (
	LabelAngry    RawLabel = "angry"
	LabelDisgust  RawLabel = "disgust"
	LabelFear     RawLabel = "fear"
	LabelHappy    RawLabel = "happy"
	LabelSad      RawLabel = "sad"
	LabelSurprise RawLabel = "surprise"
	LabelNeutral  RawLabel = "neutral"
	LabelExcited  RawLabel = "excited"
	LabelCalm     RawLabel = "calm"
	LabelFocused  RawLabel = "focused"
	LabelTired    RawLabel = "tired"
	LabelStressed RawLabel = "stressed"

	LabelNoFace RawLabel = "no face detected"
)

// RawLabels is indexed by the classifier's integer class id.
var RawLabels = []RawLabel{
	LabelAngry,
	LabelDisgust,
	LabelFear,
	LabelHappy,
	LabelSad,
	LabelSurprise,
	LabelNeutral,
	LabelExcited,
	LabelCalm,
	LabelFocused,
	LabelTired,
	LabelStressed,
}

var labelCategories = map[RawLabel]Category{
	LabelAngry:    CategoryStressed,
	LabelDisgust:  CategoryStressed,
	LabelFear:     CategoryStressed,
	LabelHappy:    CategoryHappy,
	LabelSad:      CategorySad,
	LabelSurprise: CategoryExcited,
	LabelNeutral:  CategoryNeutral,
	LabelExcited:  CategoryExcited,
	LabelCalm:     CategoryCalm,
	LabelFocused:  CategoryFocused,
	LabelTired:    CategoryTired,
	LabelStressed: CategoryStressed,
	LabelNoFace:   CategoryNeutral,
}

// MapLabel converts any raw classifier label to one of the eight categories.
// Unknown labels map to neutral.
func MapLabel(label string) Category {
	key := RawLabel(strings.ToLower(strings.TrimSpace(label)))
	if c, ok := labelCategories[key]; ok {
		return c
	}
	return CategoryNeutral
}

// LookupLabel is MapLabel for callers that must reject unknown labels.
func LookupLabel(label string) (Category, bool) {
	c, ok := labelCategories[RawLabel(strings.ToLower(strings.TrimSpace(label)))]
	return c, ok
}

// LabelForClass returns the raw label of a class id, or false when the id
// is outside the label table.
func LabelForClass(id int) (RawLabel, bool) {
	if id < 0 || id >= len(RawLabels) {
		return "", false
	}
	return RawLabels[id], true
}

type EmotionResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func NewEmotionResult(label string, confidence float64) EmotionResult {
	return EmotionResult{Label: label, Confidence: ClampConfidence(confidence)}
}

func ClampConfidence(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type Strategy string

const (
	StrategyPrecheck  Strategy = "precheck"
	StrategyDeep      Strategy = "deep"
	StrategyClassical Strategy = "classical"
	StrategyHeuristic Strategy = "heuristic"
	StrategyManual    Strategy = "manual"
)

// Detection is the outcome of one pass through the classifier chain.
type Detection struct {
	Category   Category     `json:"emotion"`
	Label      string       `json:"label"`
	Confidence float64      `json:"confidence"`
	Strategy   Strategy     `json:"strategy"`
	FaceFound  bool         `json:"face_found"`
	Face       *BoundingBox `json:"face,omitempty"`
}
