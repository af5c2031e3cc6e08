package vision

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyImage   = errors.New("empty image")
	ErrInvalidImage = errors.New("invalid image data")
)

// Decode reads a JPEG, PNG or WebP frame.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// DecodeBase64 accepts raw base64 or a data URL such as
// "data:image/jpeg;base64,...".
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, ",")
		if idx < 0 {
			return nil, ErrInvalidImage
		}
		s = s[idx+1:]
	}
	if s == "" {
		return nil, ErrEmptyImage
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return raw, nil
}

// ToGray converts using the ITU-R 601 luma weights and rebases the result
// so that its bounds start at the origin.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Crop copies rect out of g. The rectangle is clipped to g's bounds first.
func Crop(g *image.Gray, rect image.Rectangle) *image.Gray {
	rect = rect.Intersect(g.Bounds())
	out := image.NewGray(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), g, rect.Min, draw.Src)
	return out
}

// FlipHorizontal mirrors g around its vertical axis.
func FlipHorizontal(g *image.Gray) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		off := g.PixOffset(b.Min.X, b.Min.Y+y)
		src := g.Pix[off : off+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := 0; x < w; x++ {
			dst[x] = src[w-1-x]
		}
	}
	return out
}

// Pixels returns the pixel intensities in row-major order.
func Pixels(g *image.Gray) []float64 {
	b := g.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Pix[g.PixOffset(b.Min.X, y):g.PixOffset(b.Max.X, y)]
		for _, p := range row {
			out = append(out, float64(p))
		}
	}
	return out
}

// Bytes returns a tightly packed copy of the pixel buffer, one byte per pixel.
func Bytes(g *image.Gray) []uint8 {
	b := g.Bounds()
	out := make([]uint8, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		out = append(out, g.Pix[g.PixOffset(b.Min.X, y):g.PixOffset(b.Max.X, y)]...)
	}
	return out
}
