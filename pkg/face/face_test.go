package face

import (
	"context"
	"errors"
	"image"
	"io"
	"testing"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLocalizer []entity.BoundingBox

func (s staticLocalizer) Locate(context.Context, *image.Gray) []entity.BoundingBox { return s }

type fakeLandmarks struct {
	pingErr error
	points  []entity.Point
	err     error
}

func (f *fakeLandmarks) Ping(context.Context) error { return f.pingErr }

func (f *fakeLandmarks) DetectLandmarks(context.Context, []byte) ([]entity.Point, error) {
	return f.points, f.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestMinSide(t *testing.T) {
	t.Parallel()

	boxes := []entity.BoundingBox{
		{W: 29, H: 100},
		{W: 30, H: 30},
		{W: 100, H: 10},
	}
	assert.Equal(t, []entity.BoundingBox{{W: 30, H: 30}}, MinSide(boxes, 30))
	assert.Empty(t, MinSide(nil, 30))
}

func TestNewCascadeRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := NewCascade([]byte{1, 2, 3}, DefaultCascadeConfig())
	assert.Error(t, err)

	_, err = LoadCascade("/does/not/exist", DefaultCascadeConfig())
	assert.Error(t, err)
}

func TestDetector_LandmarkProbe(t *testing.T) {
	t.Parallel()

	box := entity.BoundingBox{X: 10, Y: 10, W: 40, H: 40}
	cascade := staticLocalizer{box}

	tests := []struct {
		name string
		svc  LandmarkService
		want bool
	}{
		{name: "not configured", svc: nil, want: false},
		{name: "probe fails", svc: &fakeLandmarks{pingErr: errors.New("down")}, want: false},
		{name: "probe succeeds", svc: &fakeLandmarks{}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := NewDetector(context.Background(), cascade, tt.svc, quietLogger())
			assert.Equal(t, tt.want, d.LandmarksAvailable())
			assert.Equal(t, []entity.BoundingBox{box}, d.Locate(context.Background(), image.NewGray(image.Rect(0, 0, 64, 64))))
		})
	}
}

func TestDetector_ExtractOffsetsToFrame(t *testing.T) {
	t.Parallel()

	points := make([]entity.Point, entity.LandmarkCount)
	points[0] = entity.Point{X: 1, Y: 2}
	svc := &fakeLandmarks{points: points}

	box := entity.BoundingBox{X: 10, Y: 20, W: 30, H: 30}
	d := NewDetector(context.Background(), staticLocalizer{box}, svc, quietLogger())

	gray := image.NewGray(image.Rect(0, 0, 64, 64))
	got, ok := d.Extract(context.Background(), gray, box)
	require.True(t, ok)
	require.Len(t, got, entity.LandmarkCount)
	assert.Equal(t, entity.Point{X: 11, Y: 22}, got[0])

	svc.points = points[:10]
	_, ok = d.Extract(context.Background(), gray, box)
	assert.False(t, ok)

	svc.err = errors.New("timeout")
	svc.points = points
	_, ok = d.Extract(context.Background(), gray, box)
	assert.False(t, ok)
}
