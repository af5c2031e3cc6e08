package recommendationHandler_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	recommendationHandler "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/handler"
	recommendationService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	table := profile.Default()
	svc := recommendationService.New(logger, table, catalog.NewStatic(table), nil, 7)

	app := fiber.New(fiber.Config{StrictRouting: true})
	mw := middleware.New(logger, middleware.DefaultConfig())
	app.Use(mw.NewRequestIDMiddleware())
	recommendationHandler.New(logger, validator.New(), mw, svc).Start(app.Group("/api/v1"))
	return app
}

func get(t *testing.T, app *fiber.App, path string, out interface{}) int {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == fiber.StatusOK {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func TestStatusCodes(t *testing.T) {
	t.Parallel()

	app := newApp()
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"music", "/api/v1/music/happy", fiber.StatusOK},
		{"music unknown emotion falls back", "/api/v1/music/bored", fiber.StatusOK},
		{"music count too large", "/api/v1/music/happy?count=500", fiber.StatusBadRequest},
		{"mood playlist", "/api/v1/music/calm/playlist?minutes=30", fiber.StatusOK},
		{"transition", "/api/v1/music/transition?from=stressed&to=happy", fiber.StatusOK},
		{"transition missing target", "/api/v1/music/transition?from=stressed", fiber.StatusBadRequest},
		{"transition unknown emotion", "/api/v1/music/transition?from=bored&to=happy", fiber.StatusBadRequest},
		{"subjects", "/api/v1/subjects/focused?branch=Computer%20Science", fiber.StatusOK},
		{"weekly plan", "/api/v1/subjects/tired/weekly", fiber.StatusOK},
		{"catalog", "/api/v1/music/sad/catalog", fiber.StatusOK},
		{"youtube status", "/api/v1/youtube/status", fiber.StatusOK},
		{"youtube search disabled", "/api/v1/youtube/search?q=lofi", fiber.StatusServiceUnavailable},
		{"youtube search needs query", "/api/v1/youtube/search", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.status, get(t, app, tt.path, nil))
		})
	}
}

func TestGetMusicRecommendation(t *testing.T) {
	t.Parallel()

	var resp recommendation.MusicResponse
	require.Equal(t, fiber.StatusOK, get(t, newApp(), "/api/v1/music/HAPPY?count=3", &resp))

	assert.Equal(t, "happy", resp.Data.Emotion)
	assert.Len(t, resp.Data.Tracks, 3)
	assert.NotEmpty(t, resp.Data.Genres)
	assert.NotEmpty(t, resp.Data.RecommendationReason)
}

func TestGetSubjectSuggestion(t *testing.T) {
	t.Parallel()

	var resp struct {
		Data recommendation.SubjectSuggestion `json:"data"`
	}
	require.Equal(t, fiber.StatusOK, get(t, newApp(), "/api/v1/subjects/happy", &resp))

	assert.Equal(t, "happy", resp.Data.Emotion)
	assert.NotEmpty(t, resp.Data.PrimaryRecommendation)
	assert.NotEmpty(t, resp.Data.StudyTips)
}

func TestGetCatalogStatus(t *testing.T) {
	t.Parallel()

	var status recommendation.CatalogStatus
	require.Equal(t, fiber.StatusOK, get(t, newApp(), "/api/v1/youtube/status", &status))

	assert.Equal(t, "static", status.Provider)
	assert.False(t, status.YouTube)
}
