package timelineHandler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	timelineHandler "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/handler"
	timelineRepository "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/repository"
	timelineService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo, err := timelineRepository.NewFile(filepath.Join(t.TempDir(), "emotion_data.json"), logger)
	require.NoError(t, err)

	mw := middleware.New(logger, middleware.DefaultConfig())
	app := fiber.New(fiber.Config{StrictRouting: true})
	app.Use(mw.NewRequestIDMiddleware())

	svc := timelineService.New(logger, repo, utils.New())
	timelineHandler.New(logger, validator.New(), mw, svc).Start(app.Group("/api/v1"))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestLogEmotion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"logged", `{"emotion":"Happy","confidence":0.8}`, fiber.StatusCreated},
		{"default confidence", `{"emotion":"calm"}`, fiber.StatusCreated},
		{"unknown emotion", `{"emotion":"bored"}`, fiber.StatusBadRequest},
		{"missing emotion", `{"confidence":0.5}`, fiber.StatusBadRequest},
		{"confidence out of range", `{"emotion":"sad","confidence":1.5}`, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, _ := do(t, newApp(t), fiber.MethodPost, "/api/v1/timeline", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestTimelineLifecycle(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	for _, body := range []string{`{"emotion":"happy"}`, `{"emotion":"stressed","confidence":0.4}`} {
		resp, _ := do(t, app, fiber.MethodPost, "/api/v1/timeline", body)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, data := do(t, app, fiber.MethodGet, "/api/v1/emotion-timeline?days=7", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view timeline.Timeline
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, 2, view.TotalEntries)
	assert.Len(t, view.HourlyDistribution, 24)
	assert.Equal(t, 50.0, view.EmotionFrequency["happy"].Percentage)

	resp, data = do(t, app, fiber.MethodGet, "/api/v1/timeline/session?minutes=60", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summary timeline.SessionSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 2, summary.TotalDetections)

	for i := 0; i < 2; i++ {
		resp, _ = do(t, app, fiber.MethodPost, "/api/v1/clear-timeline", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	_, data = do(t, app, fiber.MethodGet, "/api/v1/emotion-timeline", "")
	view = timeline.Timeline{}
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Zero(t, view.TotalEntries)
}

func TestGetTimeline_BadDays(t *testing.T) {
	t.Parallel()

	resp, _ := do(t, newApp(t), fiber.MethodGet, "/api/v1/emotion-timeline?days=abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
