package vision

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(w, h int, v uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// halves is dark on the left (or top) and bright on the right (or bottom).
func halves(w, h int, vertical bool) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bright := x >= w/2
			if !vertical {
				bright = y >= h/2
			}
			if bright {
				g.SetGray(x, y, color.Gray{Y: 200})
			}
		}
	}
	return g
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	t.Parallel()

	img, err := Decode(encodePNG(t, fill(8, 6, 90)))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestDecodeBase64(t *testing.T) {
	t.Parallel()

	raw := []byte{1, 2, 3}
	enc := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name  string
		input string
		want  []byte
		err   error
	}{
		{name: "raw", input: enc, want: raw},
		{name: "data url", input: "data:image/jpeg;base64," + enc, want: raw},
		{name: "padded with spaces", input: "  " + enc + "\n", want: raw},
		{name: "empty", input: "", err: ErrEmptyImage},
		{name: "empty data url", input: "data:image/png;base64,", err: ErrEmptyImage},
		{name: "data url without comma", input: "data:image/png;base64", err: ErrInvalidImage},
		{name: "not base64", input: "%%%", err: ErrInvalidImage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeBase64(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToGrayRebasesBounds(t *testing.T) {
	t.Parallel()

	rgba := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range rgba.Pix {
		rgba.Pix[i] = 255
	}
	sub := rgba.SubImage(image.Rect(5, 5, 15, 12))

	g := ToGray(sub)
	assert.Equal(t, image.Rect(0, 0, 10, 7), g.Bounds())
	assert.Equal(t, uint8(255), g.GrayAt(0, 0).Y)
}

func TestCropClipsToBounds(t *testing.T) {
	t.Parallel()

	g := halves(10, 10, true)
	c := Crop(g, image.Rect(5, 5, 50, 50))
	assert.Equal(t, image.Rect(0, 0, 5, 5), c.Bounds())
	assert.Equal(t, 200.0, Mean(c))
}

func TestFlipHorizontal(t *testing.T) {
	t.Parallel()

	g := halves(4, 2, true)
	f := FlipHorizontal(g)
	assert.Equal(t, uint8(200), f.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), f.GrayAt(3, 1).Y)
}

func TestResize(t *testing.T) {
	t.Parallel()

	r := Resize(fill(100, 80, 120), 48, 48)
	assert.Equal(t, image.Rect(0, 0, 48, 48), r.Bounds())
	assert.InDelta(t, 120, Mean(r), 1)
}

func TestStats(t *testing.T) {
	t.Parallel()

	mean, std := MeanStd(fill(6, 6, 40))
	assert.Equal(t, 40.0, mean)
	assert.Equal(t, 0.0, std)

	assert.Equal(t, 0.0, Mean(image.NewGray(image.Rect(0, 0, 0, 0))))

	g := halves(10, 10, false)
	top, ok := BandMean(g, 0, 0.5)
	require.True(t, ok)
	assert.Equal(t, 0.0, top)

	bottom, ok := BandMean(g, 0.5, 1)
	require.True(t, ok)
	assert.Equal(t, 200.0, bottom)

	_, ok = BandMean(g, 0.9, 0.9)
	assert.False(t, ok)
}

func TestSymmetry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Symmetry(fill(10, 4, 77)))
	assert.InDelta(t, 1-200.0/255, Symmetry(halves(10, 4, true)), 1e-9)
	assert.Equal(t, 1.0, Symmetry(fill(1, 4, 9)))
}

func TestEqualizeHist(t *testing.T) {
	t.Parallel()

	g := image.NewGray(image.Rect(0, 0, 4, 1))
	copy(g.Pix, []uint8{10, 10, 20, 20})

	eq := EqualizeHist(g)
	assert.Equal(t, []uint8{0, 0, 255, 255}, eq.Pix)

	flat := EqualizeHist(fill(3, 3, 50))
	assert.Equal(t, 50.0, Mean(flat))
}

func TestCannyAndEdgeDensity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, EdgeDensity(fill(20, 20, 100), 50, 150))
	assert.Greater(t, EdgeDensity(halves(20, 20, true), 50, 150), 0.0)

	small := Canny(fill(2, 2, 0), 50, 150)
	assert.Equal(t, image.Rect(0, 0, 2, 2), small.Bounds())
}
