package vision

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean is the average intensity, 0 for an empty image.
func Mean(g *image.Gray) float64 {
	px := Pixels(g)
	if len(px) == 0 {
		return 0
	}
	return stat.Mean(px, nil)
}

// MeanStd returns the mean and the population standard deviation.
func MeanStd(g *image.Gray) (mean, std float64) {
	px := Pixels(g)
	if len(px) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(px, nil)
}

// BandMean averages the horizontal band between the fractional heights
// from and to. The second return is false when the band holds no rows.
func BandMean(g *image.Gray, from, to float64) (float64, bool) {
	b := g.Bounds()
	h := b.Dy()
	y0 := int(from * float64(h))
	y1 := int(to * float64(h))
	if y1 > h {
		y1 = h
	}
	if y0 >= y1 || b.Dx() == 0 {
		return 0, false
	}
	band := Crop(g, image.Rect(b.Min.X, b.Min.Y+y0, b.Max.X, b.Min.Y+y1))
	return Mean(band), true
}

// Symmetry compares each column of the left half with its mirror column on
// the right: 1 for a perfectly symmetric image, 0 for maximal difference.
// The centre column of an odd-width image is ignored.
func Symmetry(g *image.Gray) float64 {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	half := w / 2
	if half == 0 || h == 0 {
		return 1
	}
	left := make([]float64, 0, half*h)
	right := make([]float64, 0, half*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := 0; x < half; x++ {
			left = append(left, float64(g.GrayAt(b.Min.X+x, y).Y))
			right = append(right, float64(g.GrayAt(b.Max.X-1-x, y).Y))
		}
	}
	diff := make([]float64, len(left))
	floats.SubTo(diff, left, right)
	for i, d := range diff {
		diff[i] = math.Abs(d)
	}
	return 1 - stat.Mean(diff, nil)/255
}

// EdgeDensity is the mean of a Canny edge map, in the 0-255 range.
func EdgeDensity(g *image.Gray, low, high float64) float64 {
	return Mean(Canny(g, low, high))
}
