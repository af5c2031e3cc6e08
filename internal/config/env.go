package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/gemini"
)

// Env is every setting read from the process environment.
type Env struct {
	AppPort string `validate:"required,numeric"`
	AppEnv  string `validate:"oneof=development production test"`

	FaceCascadePath     string `validate:"required"`
	LandmarkServiceURL  string `validate:"omitempty,url"`
	EmotionModelBackend string `validate:"oneof=ws gemini none"`
	EmotionServiceURL   string `validate:"required_if=EmotionModelBackend ws"`
	GeminiAPIKey        string `validate:"required_if=EmotionModelBackend gemini"`
	GeminiModelName     string
	ClassifierModelPath string

	TimelineBackend string `validate:"oneof=file sqlite postgres redis"`
	TimelineFile    string `validate:"required_if=TimelineBackend file"`
	SQLitePath      string `validate:"required_if=TimelineBackend sqlite"`

	DBHost     string `validate:"required_if=TimelineBackend postgres"`
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string `validate:"required_if=TimelineBackend postgres"`
	DBSSLMode  string

	RedisAddress  string `validate:"required_if=TimelineBackend redis"`
	RedisPassword string
	RedisDB       int `validate:"min=0"`

	CatalogProvider     string `validate:"oneof=static youtube spotify"`
	YouTubeAPIKey       string `validate:"required_if=CatalogProvider youtube"`
	SpotifyClientID     string `validate:"required_if=CatalogProvider spotify"`
	SpotifyClientSecret string `validate:"required_if=CatalogProvider spotify"`
	CatalogCacheTTL     time.Duration

	RateLimitRPS   float64 `validate:"gte=0"`
	RateLimitBurst int     `validate:"gte=0"`
	CORSOrigins    string
	// RecommendationSeed of 0 seeds from the clock.
	RecommendationSeed int64
}

// LoadEnv reads Env with defaults and validates it.
func LoadEnv() (Env, error) {
	var (
		env Env
		err error
	)

	env.AppPort = getEnv("APP_PORT", "3000")
	env.AppEnv = getEnv("APP_ENV", "development")

	env.FaceCascadePath = getEnv("FACE_CASCADE_PATH", "./models/facefinder")
	env.LandmarkServiceURL = os.Getenv("LANDMARK_SERVICE_URL")
	env.EmotionModelBackend = getEnv("EMOTION_MODEL_BACKEND", "none")
	env.EmotionServiceURL = os.Getenv("EMOTION_SERVICE_URL")
	env.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	env.GeminiModelName = getEnv("GEMINI_MODEL_NAME", gemini.DefaultModelName)
	env.ClassifierModelPath = getEnv("CLASSIFIER_MODEL_PATH", "./models/emotion_classifier.json")

	env.TimelineBackend = getEnv("TIMELINE_BACKEND", "file")
	env.TimelineFile = getEnv("TIMELINE_FILE", "./storage/emotion_data.json")
	env.SQLitePath = getEnv("SQLITE_PATH", "./storage/timeline.db")

	env.DBHost = os.Getenv("DB_HOST")
	env.DBPort = getEnv("DB_PORT", "5432")
	env.DBUser = os.Getenv("DB_USER")
	env.DBPassword = os.Getenv("DB_PASSWORD")
	env.DBName = os.Getenv("DB_NAME")
	env.DBSSLMode = getEnv("DB_SSLMODE", "disable")

	env.RedisAddress = os.Getenv("REDIS_ADDRESS")
	env.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if env.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return Env{}, err
	}

	env.CatalogProvider = getEnv("CATALOG_PROVIDER", "static")
	env.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	env.SpotifyClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	env.SpotifyClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
	if env.CatalogCacheTTL, err = getDuration("CATALOG_CACHE_TTL", time.Hour); err != nil {
		return Env{}, err
	}

	if env.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 50); err != nil {
		return Env{}, err
	}
	if env.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 100); err != nil {
		return Env{}, err
	}
	env.CORSOrigins = getEnv("CORS_ORIGINS", "*")

	seed, err := getInt("RECOMMENDATION_SEED", 0)
	if err != nil {
		return Env{}, err
	}
	env.RecommendationSeed = int64(seed)

	if err := NewValidator().Struct(env); err != nil {
		return Env{}, fmt.Errorf("invalid environment: %w", err)
	}
	return env, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
