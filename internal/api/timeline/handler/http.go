package timelineHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	timelineService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	"github.com/sirupsen/logrus"
)

type TimelineHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	timelineService timelineService.ITimelineService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	timelineService timelineService.ITimelineService,
) *TimelineHandler {
	return &TimelineHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		timelineService: timelineService,
	}
}

func (h *TimelineHandler) Start(srv fiber.Router) {
	srv.Get("/emotion-timeline", h.GetTimeline)
	srv.Post("/clear-timeline", h.ClearTimeline)
	srv.Post("/timeline", h.middleware.NewRateLimiter, h.LogEmotion)
	srv.Get("/timeline/session", h.GetSessionSummary)
}
