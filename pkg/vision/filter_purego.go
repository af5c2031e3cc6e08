//go:build !cgo || purego

package vision

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// EqualizeHist spreads the intensity histogram of g over the full 0-255
// range using its cumulative distribution.
func EqualizeHist(g *image.Gray) *image.Gray {
	px := Bytes(g)
	b := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if len(px) == 0 {
		return out
	}

	var hist [256]int
	for _, p := range px {
		hist[p]++
	}

	first := 0
	for hist[first] == 0 {
		first++
	}
	total := len(px)

	var lut [256]uint8
	if hist[first] == total {
		for i := range lut {
			lut[i] = uint8(first)
		}
	} else {
		scale := 255.0 / float64(total-hist[first])
		sum := 0
		for i := first + 1; i < 256; i++ {
			sum += hist[i]
			lut[i] = uint8(math.Min(255, math.Round(float64(sum)*scale)))
		}
	}

	for i, p := range px {
		out.Pix[i] = lut[p]
	}
	return out
}

// Canny runs a 3x3 Sobel Canny edge detector with L1 gradient magnitude.
// Edge pixels are 255, everything else 0.
func Canny(g *image.Gray, low, high float64) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return out
	}
	if low > high {
		low, high = high, low
	}

	px := Bytes(g)
	at := func(x, y int) int {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= h {
			y = h - 1
		}
		return int(px[y*w+x])
	}

	gx := make([]int, w*h)
	gy := make([]int, w*h)
	mag := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x-1, y) + at(x-1, y+1))
			dy := (at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x, y-1) + at(x+1, y-1))
			i := y*w + x
			gx[i], gy[i] = dx, dy
			mag[i] = abs(dx) + abs(dy)
		}
	}

	const (
		none = iota
		weak
		strong
	)
	state := make([]uint8, w*h)
	// tan(22.5) and tan(67.5) bound the four gradient direction sectors.
	const tg22, tg67 = 0.4142135623730951, 2.414213562373095

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if float64(m) <= low {
				continue
			}
			ax, ay := math.Abs(float64(gx[i])), math.Abs(float64(gy[i]))
			var n1, n2 int
			switch {
			case ay <= ax*tg22:
				n1, n2 = mag[i-1], mag[i+1]
			case ay >= ax*tg67:
				n1, n2 = mag[i-w], mag[i+w]
			case (gx[i] < 0) != (gy[i] < 0):
				n1, n2 = mag[i-w+1], mag[i+w-1]
			default:
				n1, n2 = mag[i-w-1], mag[i+w+1]
			}
			if m <= n1 || m < n2 {
				continue
			}
			if float64(m) > high {
				state[i] = strong
			} else {
				state[i] = weak
			}
		}
	}

	stack := make([]int, 0, w)
	for i, s := range state {
		if s == strong {
			stack = append(stack, i)
			out.Pix[i] = 255
		}
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				j := ny*w + nx
				if state[j] == weak {
					state[j] = strong
					out.Pix[j] = 255
					stack = append(stack, j)
				}
			}
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Resize scales g to w x h with bilinear interpolation.
func Resize(g *image.Gray, w, h int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(out, out.Bounds(), g, g.Bounds(), draw.Src, nil)
	return out
}
