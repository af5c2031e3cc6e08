package entity

import "image"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BoundingBox struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func (b BoundingBox) Origin() image.Point { return image.Pt(b.X, b.Y) }
func (b BoundingBox) TopRight() image.Point { return image.Pt(b.X+b.W, b.Y) }
func (b BoundingBox) BottomLeft() image.Point { return image.Pt(b.X, b.Y+b.H) }
func (b BoundingBox) Center() image.Point { return image.Pt(b.X+b.W/2, b.Y+b.H/2) }
func (b BoundingBox) Area() int { return b.W * b.H }
func (b BoundingBox) Rect() image.Rectangle { return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H) }
func (b BoundingBox) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Clip intersects the box with bounds. The result is empty when the two do
// not overlap.
func (b BoundingBox) Clip(bounds image.Rectangle) BoundingBox {
	r := b.Rect().Intersect(bounds)
	return BoundingBox{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Largest picks the box with the greatest area. The first box wins a tie.
func Largest(boxes []BoundingBox) (BoundingBox, bool) {
	if len(boxes) == 0 {
		return BoundingBox{}, false
	}
	best := boxes[0]
	for _, b := range boxes[1:] {
		if b.Area() > best.Area() {
			best = b
		}
	}
	return best, true
}

const LandmarkCount = 68

// LandmarkSet follows the 68-point iBUG layout: jaw 0-16, brows 17-26,
// nose 27-35, eyes 36-47, mouth 48-67.
type LandmarkSet []Point

func (l LandmarkSet) Complete() bool {
	return len(l) == LandmarkCount
}

func (l LandmarkSet) span(from, to int) []Point {
	if from >= len(l) {
		return nil
	}
	if to > len(l) {
		to = len(l)
	}
	return l[from:to]
}

func (l LandmarkSet) LeftEye() []Point { return l.span(36, 42) }
func (l LandmarkSet) RightEye() []Point { return l.span(42, 48) }
func (l LandmarkSet) Mouth() []Point { return l.span(48, 68) }
