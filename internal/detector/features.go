package detector

import (
	"image"
	"math"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
)

type FeaturePath string

const (
	PathGeometric FeaturePath = "geometric"
	PathPixel     FeaturePath = "pixel"
)

const (
	PixelSide = 48
	// PixelFeatureLen is the flattened 48x48 face.
	PixelFeatureLen = PixelSide * PixelSide
	// GeometricFeatureLen is 55 key-point distances, two values per eye and
	// two for the mouth.
	GeometricFeatureLen = 55 + 2 + 2 + 2
)

// keyPoints are brow ends, eye corners and mouth corners plus the lower lip.
var keyPoints = []int{17, 21, 22, 26, 36, 39, 42, 45, 48, 54, 57}

type FeatureVector struct {
	Values []float64   `json:"values"`
	Path   FeaturePath `json:"path"`
}

// ExtractFeatures builds the geometric vector when a complete landmark set
// is supplied, otherwise the normalised 48x48 pixel vector of the face.
func ExtractFeatures(gray *image.Gray, box entity.BoundingBox, landmarks entity.LandmarkSet) FeatureVector {
	if landmarks.Complete() {
		return FeatureVector{Values: geometricFeatures(landmarks), Path: PathGeometric}
	}
	return FeatureVector{Values: pixelFeatures(vision.Crop(gray, box.Rect())), Path: PathPixel}
}

func geometricFeatures(l entity.LandmarkSet) []float64 {
	out := make([]float64, 0, GeometricFeatureLen)
	for i := 0; i < len(keyPoints); i++ {
		for j := i + 1; j < len(keyPoints); j++ {
			if keyPoints[i] >= len(l) || keyPoints[j] >= len(l) {
				continue
			}
			out = append(out, dist(l[keyPoints[i]], l[keyPoints[j]]))
		}
	}
	out = append(out, eyeFeatures(l.LeftEye())...)
	out = append(out, eyeFeatures(l.RightEye())...)
	out = append(out, mouthFeatures(l.Mouth())...)
	return out
}

// eyeFeatures yields the eye aspect ratio and width/height ratio, or
// nothing when fewer than six points are available.
func eyeFeatures(eye []entity.Point) []float64 {
	if len(eye) < 6 {
		return nil
	}
	horizontal := dist(eye[0], eye[3])
	ear := 0.0
	if horizontal > 0 {
		ear = (dist(eye[1], eye[5]) + dist(eye[2], eye[4])) / (2 * horizontal)
	}
	ratio := 0.0
	if height := dist(eye[1], eye[5]); height > 0 {
		ratio = horizontal / height
	}
	return []float64{ear, ratio}
}

// mouthFeatures yields the mouth aspect ratio and smile ratio, or nothing
// when fewer than twelve points are available.
func mouthFeatures(m []entity.Point) []float64 {
	if len(m) < 12 {
		return nil
	}
	horizontal := dist(m[0], m[6])
	mar := 0.0
	if horizontal > 0 {
		mar = (dist(m[2], m[10]) + dist(m[4], m[8])) / (2 * horizontal)
	}
	smile := horizontal / (dist(m[3], m[9]) + 0.001)
	return []float64{mar, smile}
}

func pixelFeatures(face *image.Gray) []float64 {
	if face.Bounds().Empty() {
		return make([]float64, PixelFeatureLen)
	}
	px := vision.Pixels(vision.Resize(face, PixelSide, PixelSide))
	for i := range px {
		px[i] /= 255
	}
	return px
}

func dist(a, b entity.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
