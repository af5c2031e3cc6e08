package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_PORT", "APP_ENV", "FACE_CASCADE_PATH", "LANDMARK_SERVICE_URL",
	"EMOTION_MODEL_BACKEND", "EMOTION_SERVICE_URL", "GEMINI_API_KEY", "GEMINI_MODEL_NAME",
	"CLASSIFIER_MODEL_PATH", "TIMELINE_BACKEND", "TIMELINE_FILE", "SQLITE_PATH",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
	"CATALOG_PROVIDER", "YOUTUBE_API_KEY", "SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET",
	"CATALOG_CACHE_TTL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ORIGINS",
	"RECOMMENDATION_SEED",
}

// clearEnv blanks every key LoadEnv reads; empty values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", env.AppPort)
	assert.Equal(t, "development", env.AppEnv)
	assert.Equal(t, "none", env.EmotionModelBackend)
	assert.Equal(t, "file", env.TimelineBackend)
	assert.Equal(t, "./storage/emotion_data.json", env.TimelineFile)
	assert.Equal(t, "static", env.CatalogProvider)
	assert.Equal(t, time.Hour, env.CatalogCacheTTL)
	assert.Equal(t, 50.0, env.RateLimitRPS)
	assert.Equal(t, 100, env.RateLimitBurst)
	assert.Zero(t, env.RecommendationSeed)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMELINE_BACKEND", "postgres")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "emotions")
	t.Setenv("CATALOG_CACHE_TTL", "15m")
	t.Setenv("RECOMMENDATION_SEED", "42")

	env, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "postgres", env.TimelineBackend)
	assert.Equal(t, "5432", env.DBPort)
	assert.Equal(t, 15*time.Minute, env.CatalogCacheTTL)
	assert.Equal(t, int64(42), env.RecommendationSeed)
}

func TestLoadEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"non numeric port", map[string]string{"APP_PORT": "http"}},
		{"unknown app env", map[string]string{"APP_ENV": "staging"}},
		{"ws backend without url", map[string]string{"EMOTION_MODEL_BACKEND": "ws"}},
		{"gemini backend without key", map[string]string{"EMOTION_MODEL_BACKEND": "gemini"}},
		{"unknown timeline backend", map[string]string{"TIMELINE_BACKEND": "mongo"}},
		{"postgres without host", map[string]string{"TIMELINE_BACKEND": "postgres"}},
		{"redis without address", map[string]string{"TIMELINE_BACKEND": "redis"}},
		{"youtube without key", map[string]string{"CATALOG_PROVIDER": "youtube"}},
		{"spotify without secret", map[string]string{"CATALOG_PROVIDER": "spotify", "SPOTIFY_CLIENT_ID": "id"}},
		{"bad ttl", map[string]string{"CATALOG_CACHE_TTL": "soon"}},
		{"bad rate", map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{"bad redis db", map[string]string{"REDIS_DB": "one"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}

			_, err := LoadEnv()
			assert.Error(t, err)
		})
	}
}
