package detectionHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	detectionService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/utils"
	"github.com/sirupsen/logrus"
)

type DetectionHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	detectionService detectionService.IDetectionService
	utils            utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ds detectionService.IDetectionService,
	utils utils.IUtils,
) *DetectionHandler {
	return &DetectionHandler{
		detectionService: ds,
		log:              log,
		validator:        validator,
		middleware:       middleware,
		utils:            utils,
	}
}

func (h *DetectionHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	srv.Post("/detect-emotion", h.middleware.NewRateLimiter, h.DetectEmotion)
	srv.Post("/classify", h.middleware.NewRateLimiter, h.Classify)
	srv.Get("/capabilities", h.GetCapabilities)

	emotion := srv.Group("/emotion")
	emotion.Use("/ws", wsMiddleware)
	emotion.Get("/ws", websocket.New(h.handleEmotionWebSocket))
}
