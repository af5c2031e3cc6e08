//go:build cgo && !purego

package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// toMat wraps a tightly packed copy of g in a single channel 8-bit Mat.
func toMat(g *image.Gray) (gocv.Mat, error) {
	b := g.Bounds()
	return gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8U, Bytes(g))
}

// fromMat copies m into a Gray anchored at the origin.
func fromMat(m gocv.Mat) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.Cols(), m.Rows()))
	copy(out.Pix, m.ToBytes())
	return out
}

// EqualizeHist spreads the intensity histogram of g over the full 0-255
// range using its cumulative distribution.
func EqualizeHist(g *image.Gray) *image.Gray {
	b := g.Bounds()
	if b.Empty() {
		return image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	}

	src, err := toMat(g)
	if err != nil {
		return image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.EqualizeHist(src, &dst)
	return fromMat(dst)
}

// Canny runs OpenCV's 3x3 Sobel Canny edge detector with L1 gradient
// magnitude. Edge pixels are 255, everything else 0.
func Canny(g *image.Gray, low, high float64) *image.Gray {
	b := g.Bounds()
	if b.Empty() {
		return image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	if low > high {
		low, high = high, low
	}

	src, err := toMat(g)
	if err != nil {
		return image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	defer src.Close()

	edges := gocv.NewMat()
	defer edges.Close()

	gocv.Canny(src, &edges, float32(low), float32(high))
	return fromMat(edges)
}

// Resize scales g to w x h with bilinear interpolation.
func Resize(g *image.Gray, w, h int) *image.Gray {
	if g.Bounds().Empty() || w <= 0 || h <= 0 {
		return image.NewGray(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}

	src, err := toMat(g)
	if err != nil {
		return image.NewGray(image.Rect(0, 0, w, h))
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.Resize(src, &dst, image.Pt(w, h), 0, 0, gocv.InterpolationLinear)
	return fromMat(dst)
}
