package detectionService_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection"
	detectionService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection/service"
	recommendationService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/service"
	timelineRepository "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/repository"
	timelineService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/classifier"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	result    detector.Result
	frames    [][]byte
	classErr  error
	classResp entity.Detection
}

func (f *fakeDetector) DetectBytes(_ context.Context, data []byte) detector.Result {
	f.frames = append(f.frames, data)
	return f.result
}

func (f *fakeDetector) Classify([]float64) (entity.Detection, error) {
	return f.classResp, f.classErr
}

func (f *fakeDetector) Capabilities() detector.Capabilities {
	return detector.Capabilities{Heuristic: true}
}

type brokenRepo struct{}

func (brokenRepo) Backend() timelineRepository.Backend { return timelineRepository.BackendFile }

func (brokenRepo) Append(context.Context, entity.TimelineEntry) error {
	return errors.New("disk full")
}

func (brokenRepo) ReadAll(context.Context) ([]entity.TimelineEntry, error) { return nil, nil }

func (brokenRepo) Clear(context.Context) error { return nil }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fixture struct {
	svc      detectionService.IDetectionService
	detector *fakeDetector
	timeline timelineService.ITimelineService
}

func newFixture(t *testing.T, repo timelineRepository.Repository) fixture {
	t.Helper()
	logger := quietLogger()

	if repo == nil {
		var err error
		repo, err = timelineRepository.NewFile(filepath.Join(t.TempDir(), "emotion_data.json"), logger)
		require.NoError(t, err)
	}

	table := profile.Default()
	rec := recommendationService.New(logger, table, catalog.NewStatic(table), nil, 1)
	tl := timelineService.New(logger, repo, utils.New())
	det := &fakeDetector{result: detector.Result{Detection: entity.Detection{
		Category:   entity.CategoryHappy,
		Label:      "happy",
		Confidence: 0.87654,
		Strategy:   entity.StrategyHeuristic,
		FaceFound:  true,
	}}}

	return fixture{
		svc:      detectionService.New(logger, det, rec, tl),
		detector: det,
		timeline: tl,
	}
}

func TestDetect_Frame(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	frame := []byte("jpeg bytes")

	res, err := f.svc.Detect(context.Background(), detection.DetectRequest{
		Image: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame),
		Count: 3,
	})
	require.NoError(t, err)

	require.Len(t, f.detector.frames, 1)
	assert.Equal(t, frame, f.detector.frames[0])
	assert.Equal(t, entity.CategoryHappy, res.Emotion)
	assert.Equal(t, 0.88, res.Confidence)
	assert.Len(t, res.Music.Tracks, 3)
	require.NotNil(t, res.Music.Catalog)
	assert.Equal(t, "static", res.Music.Catalog.Provider)
	assert.NotEmpty(t, res.Subject.PrimaryRecommendation)
	assert.True(t, res.Logged)

	entries, err := f.timeline.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.CategoryHappy, entries[0].Emotion)
}

func TestDetect_BadBase64RunsAsEmptyFrame(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	_, err := f.svc.Detect(context.Background(), detection.DetectRequest{Image: "%%%"})
	require.NoError(t, err)

	require.Len(t, f.detector.frames, 1)
	assert.Empty(t, f.detector.frames[0])
}

func TestDetect_ClientEmotion(t *testing.T) {
	t.Parallel()

	half := 0.5
	tests := []struct {
		name       string
		req        detection.DetectRequest
		emotion    entity.Category
		confidence float64
		err        error
	}{
		{
			name:       "category defaults confidence",
			req:        detection.DetectRequest{Emotion: "Happy"},
			emotion:    entity.CategoryHappy,
			confidence: 1,
		},
		{
			name:       "raw label is mapped",
			req:        detection.DetectRequest{Emotion: "angry", Confidence: &half},
			emotion:    entity.CategoryStressed,
			confidence: 0.5,
		},
		{
			name: "unknown label",
			req:  detection.DetectRequest{Emotion: "bored"},
			err:  detection.ErrUnknownEmotion,
		},
		{
			name: "nothing sent",
			req:  detection.DetectRequest{},
			err:  detection.ErrMissingInput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil)
			res, err := f.svc.Detect(context.Background(), tt.req)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.emotion, res.Emotion)
			assert.Equal(t, tt.confidence, res.Confidence)
			assert.Equal(t, entity.StrategyManual, res.Strategy)
			assert.Empty(t, f.detector.frames)
		})
	}
}

func TestDetect_TimelineFailureStillAnswers(t *testing.T) {
	t.Parallel()

	f := newFixture(t, brokenRepo{})
	res := f.svc.DetectFrame(context.Background(), []byte("frame"), detection.Options{})

	assert.Equal(t, entity.CategoryHappy, res.Emotion)
	assert.False(t, res.Logged)
	assert.Len(t, res.Music.Tracks, 5)
}

func TestDetectFrame_SkipTimeline(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	res := f.svc.DetectFrame(context.Background(), []byte("frame"), detection.Options{SkipTimeline: true})
	assert.False(t, res.Logged)

	entries, err := f.timeline.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClassify_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no model", detector.ErrClassifierUnavailable, detection.ErrClassifierUnavailable},
		{"wrong width", classifier.ErrDimension, detection.ErrFeatureDimension},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil)
			f.detector.classErr = tt.err
			_, err := f.svc.Classify(context.Background(), []float64{1, 2})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
