package face

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/vision"
)

var ErrCascadeNotLoaded = errors.New("face cascade not loaded")

// Localizer finds face regions in a grayscale frame. An empty result means
// no face, never an error.
type Localizer interface {
	Locate(ctx context.Context, gray *image.Gray) []entity.BoundingBox
}

type CascadeConfig struct {
	MinSize      int
	MaxSize      int
	ShiftFactor  float64
	ScaleFactor  float64
	IoUThreshold float64
	// MinQuality drops weak detections; pigo reports an unbounded score.
	MinQuality float32
}

func DefaultCascadeConfig() CascadeConfig {
	return CascadeConfig{
		MinSize:      30,
		MaxSize:      1000,
		ShiftFactor:  0.1,
		ScaleFactor:  1.1,
		IoUThreshold: 0.2,
		MinQuality:   5.0,
	}
}

// Cascade is the pixel-intensity-comparison cascade detector from pigo.
type Cascade struct {
	classifier *pigo.Pigo
	cfg        CascadeConfig
}

func LoadCascade(path string, cfg CascadeConfig) (*Cascade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cascade %s: %w", path, err)
	}
	return NewCascade(data, cfg)
}

// NewCascade unpacks a pigo cascade file. pigo indexes the buffer without
// bounds checks, so a truncated file is reported as an error here.
func NewCascade(data []byte, cfg CascadeConfig) (c *Cascade, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("%w: malformed cascade: %v", ErrCascadeNotLoaded, r)
		}
	}()

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}
	return &Cascade{classifier: classifier, cfg: cfg}, nil
}

func (c *Cascade) Locate(_ context.Context, gray *image.Gray) []entity.BoundingBox {
	if c == nil || c.classifier == nil {
		return nil
	}
	b := gray.Bounds()
	if b.Dx() < c.cfg.MinSize || b.Dy() < c.cfg.MinSize {
		return nil
	}

	params := pigo.ImageParams{
		Pixels: vision.Bytes(gray),
		Rows:   b.Dy(),
		Cols:   b.Dx(),
		Dim:    b.Dx(),
	}
	dets := c.classifier.RunCascade(pigo.CascadeParams{
		MinSize:     c.cfg.MinSize,
		MaxSize:     c.cfg.MaxSize,
		ShiftFactor: c.cfg.ShiftFactor,
		ScaleFactor: c.cfg.ScaleFactor,
		ImageParams: params,
	}, 0.0)
	dets = c.classifier.ClusterDetections(dets, c.cfg.IoUThreshold)

	frame := image.Rect(0, 0, b.Dx(), b.Dy())
	boxes := make([]entity.BoundingBox, 0, len(dets))
	for _, d := range dets {
		if d.Q < c.cfg.MinQuality {
			continue
		}
		box := entity.BoundingBox{
			X: d.Col - d.Scale/2,
			Y: d.Row - d.Scale/2,
			W: d.Scale,
			H: d.Scale,
		}.Clip(frame)
		if !box.Empty() {
			boxes = append(boxes, box)
		}
	}
	return boxes
}

// MinSide discards boxes whose shorter side is below side.
func MinSide(boxes []entity.BoundingBox, side int) []entity.BoundingBox {
	var out []entity.BoundingBox
	for _, b := range boxes {
		if b.W >= side && b.H >= side {
			out = append(out, b)
		}
	}
	return out
}
