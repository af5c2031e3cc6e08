package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jmoiron/sqlx"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/database/postgres"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/database/sqlite"
	detectionHandler "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection/handler"
	detectionService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection/service"
	recommendationHandler "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/handler"
	recommendationService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/service"
	timelineHandler "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/handler"
	timelineRepository "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/repository"
	timelineService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/profile"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/catalog"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/classifier"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/face"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/gemini"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/redis"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/spotify"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/utils"
	websocketPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/websocket"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/youtube"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	env        Env
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler

	table        *profile.Table
	redisServer  redis.IRedis
	aiWebsocket  websocketPkg.IWebsocket
	geminiClient gemini.IGemini
	chain        *detector.Chain
	timelineRepo timelineRepository.Repository
	catalog      catalog.Provider
	youtube      youtube.IYouTube
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.chain == nil {
		return nil, fmt.Errorf("emotion classifier chain is required")
	}
	if server.timelineRepo == nil {
		return nil, fmt.Errorf("timeline store is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithEnv(env Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		s.table = profile.Default()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Config{
			RateLimit: rate.Limit(s.env.RateLimitRPS),
			Burst:     s.env.RateLimitBurst,
		})
		return nil
	}
}

// WithRedisServer connects only when an address is configured.
func WithRedisServer() ServerOption {
	return func(s *Server) error {
		if s.env.RedisAddress == "" {
			return nil
		}
		s.redisServer = redis.New(redis.Config{
			Address:  s.env.RedisAddress,
			Password: s.env.RedisPassword,
			DB:       s.env.RedisDB,
		}, s.log)
		return nil
	}
}

func WithWebSocket() ServerOption {
	return func(s *Server) error {
		cfg := websocketPkg.DefaultConfig()
		cfg.URLs[websocketPkg.LandmarkService] = s.env.LandmarkServiceURL
		if s.env.EmotionModelBackend == "ws" {
			cfg.URLs[websocketPkg.EmotionService] = s.env.EmotionServiceURL
		}
		s.aiWebsocket = websocketPkg.NewAIWebSocketClient(cfg, s.log)
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		if s.env.EmotionModelBackend != "gemini" {
			return nil
		}
		client, err := gemini.NewGeminiClient(context.Background(), s.env.GeminiAPIKey, s.env.GeminiModelName)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

// WithEmotionChain loads the face cascade, which is required, and probes
// every optional backend once.
func WithEmotionChain() ServerOption {
	return func(s *Server) error {
		cascade, err := face.LoadCascade(s.env.FaceCascadePath, face.DefaultCascadeConfig())
		if err != nil {
			return fmt.Errorf("failed to load face cascade: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		opts := detector.Options{Localizer: cascade}

		if s.aiWebsocket != nil && s.env.LandmarkServiceURL != "" {
			d := face.NewDetector(ctx, cascade, websocketPkg.NewLandmarkClient(s.aiWebsocket), s.log)
			opts.Localizer = d
			opts.Landmarks = d
		}

		switch s.env.EmotionModelBackend {
		case "ws":
			if s.aiWebsocket != nil {
				opts.Model = websocketPkg.NewEmotionClient(s.aiWebsocket)
			}
		case "gemini":
			if s.geminiClient != nil {
				opts.Model = gemini.NewEmotionModel(s.geminiClient)
			}
		}

		if s.env.ClassifierModelPath != "" {
			model, err := classifier.Load(s.env.ClassifierModelPath)
			if err != nil {
				s.log.WithField("error", err.Error()).Warn("Classical emotion classifier could not be loaded")
			} else {
				opts.Classifier = model
			}
		}

		s.chain = detector.NewChain(ctx, s.log, opts)
		return nil
	}
}

func WithTimelineStore() ServerOption {
	return func(s *Server) error {
		backend := timelineRepository.Backend(s.env.TimelineBackend)

		switch backend {
		case timelineRepository.BackendFile:
			repo, err := timelineRepository.NewFile(s.env.TimelineFile, s.log)
			if err != nil {
				return fmt.Errorf("failed to open timeline file: %w", err)
			}
			s.timelineRepo = repo

		case timelineRepository.BackendSQLite, timelineRepository.BackendPostgres:
			var (
				db  *sqlx.DB
				err error
			)
			if backend == timelineRepository.BackendSQLite {
				db, err = sqlite.New(s.env.SQLitePath)
			} else {
				db, err = postgres.New(postgres.Config{
					Host:     s.env.DBHost,
					Port:     s.env.DBPort,
					User:     s.env.DBUser,
					Password: s.env.DBPassword,
					Name:     s.env.DBName,
					SSLMode:  s.env.DBSSLMode,
				})
			}
			if err != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
				return fmt.Errorf("failed to create database connection: %w", err)
			}
			if err := timelineRepository.Migrate(db.DB, backend); err != nil {
				return fmt.Errorf("failed to migrate timeline schema: %w", err)
			}
			s.db = db
			s.timelineRepo = timelineRepository.NewSQL(db, backend, s.log)

		case timelineRepository.BackendRedis:
			if s.redisServer == nil {
				return fmt.Errorf("redis timeline store needs REDIS_ADDRESS")
			}
			s.timelineRepo = timelineRepository.NewRedis(s.redisServer, timelineRepository.DefaultRedisKey, s.log)

		default:
			return fmt.Errorf("unknown timeline backend %q", backend)
		}

		s.log.WithField("backend", backend).Info("Timeline store ready")
		return nil
	}
}

// WithCatalog puts the configured provider behind a circuit breaker that
// falls back to the static catalog, and behind the redis cache when redis
// is connected.
func WithCatalog() ServerOption {
	return func(s *Server) error {
		ctx := context.Background()
		static := catalog.NewStatic(s.table)

		if s.env.YouTubeAPIKey != "" {
			yt, err := youtube.New(ctx, s.env.YouTubeAPIKey, s.table)
			if err != nil {
				return fmt.Errorf("failed to create YouTube client: %w", err)
			}
			s.youtube = yt
		}

		var primary catalog.Provider
		switch s.env.CatalogProvider {
		case "youtube":
			if s.youtube != nil {
				primary = s.youtube
			}
		case "spotify":
			sp, err := spotify.New(ctx, spotify.Config{
				ClientID:     s.env.SpotifyClientID,
				ClientSecret: s.env.SpotifyClientSecret,
			}, s.table)
			if err != nil {
				return fmt.Errorf("failed to create Spotify client: %w", err)
			}
			primary = sp
		}

		if primary == nil {
			s.catalog = static
			return nil
		}

		var provider catalog.Provider = catalog.NewResilient(primary, static, catalog.DefaultBreakerConfig(), s.log)
		if s.redisServer != nil && s.env.CatalogCacheTTL > 0 {
			provider = catalog.NewCached(provider, s.redisServer, s.env.CatalogCacheTTL, s.log)
		}
		s.catalog = provider
		return nil
	}
}

func (s *Server) RegisterHandler() {
	seed := s.env.RecommendationSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Recommendation
	recommendationServices := recommendationService.New(s.log, s.table, s.catalog, s.youtube, seed)
	recommendationHandlers := recommendationHandler.New(s.log, s.validator, s.middleware, recommendationServices)

	// Timeline
	timelineServices := timelineService.New(s.log, s.timelineRepo, s.utils)
	timelineHandlers := timelineHandler.New(s.log, s.validator, s.middleware, timelineServices)

	// Detection
	detectionServices := detectionService.New(s.log, s.chain, recommendationServices, timelineServices)
	detectionHandlers := detectionHandler.New(s.log, s.validator, s.middleware, detectionServices, s.utils)

	s.handlers = append(s.handlers, detectionHandlers, recommendationHandlers, timelineHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: s.env.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	s.engine.Use(s.middleware.NewLoggingMiddleware)

	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	return s.engine.Listen(fmt.Sprintf(":%s", s.env.AppPort))
}

// Shutdown stops the listener and releases every backend connection.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.aiWebsocket != nil {
		s.aiWebsocket.CloseConnections()
	}
	if s.geminiClient != nil {
		s.geminiClient.Close()
	}
	if s.redisServer != nil {
		if cerr := s.redisServer.Close(); cerr != nil {
			s.log.Errorf("Failed to close redis: %v", cerr)
		}
	}
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			s.log.Errorf("Failed to close database: %v", cerr)
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})

	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		catalogName := "none"
		if s.catalog != nil {
			catalogName = s.catalog.Name()
		}
		return ctx.JSON(fiber.Map{
			"status":       "healthy",
			"environment":  s.env.AppEnv,
			"capabilities": s.chain.Capabilities(),
			"timeline":     s.timelineRepo.Backend(),
			"catalog":      catalogName,
			"timestamp":    time.Now(),
		})
	})

	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
