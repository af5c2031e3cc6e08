package recommendationHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	recommendationService "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation/service"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/middleware"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	log                   *logrus.Logger
	validator             *validator.Validate
	middleware            middleware.Middleware
	recommendationService recommendationService.IRecommendationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	recommendationService recommendationService.IRecommendationService,
) *RecommendationHandler {
	return &RecommendationHandler{
		log:                   log,
		validator:             validate,
		middleware:            middleware,
		recommendationService: recommendationService,
	}
}

func (h *RecommendationHandler) Start(srv fiber.Router) {
	music := srv.Group("/music")
	music.Get("/transition", h.GetTransitionPlaylist)
	music.Get("/:emotion", h.GetMusicRecommendation)
	music.Get("/:emotion/playlist", h.GetMoodPlaylist)
	music.Get("/:emotion/catalog", h.middleware.NewRateLimiter, h.GetCatalogRecommendation)

	subjects := srv.Group("/subjects")
	subjects.Get("/:emotion", h.GetSubjectSuggestion)
	subjects.Get("/:emotion/weekly", h.GetWeeklyPlan)

	youtube := srv.Group("/youtube")
	youtube.Get("/status", h.GetCatalogStatus)
	youtube.Get("/search", h.middleware.NewRateLimiter, h.SearchYouTube)
	youtube.Get("/playlist/:id", h.middleware.NewRateLimiter, h.GetYouTubePlaylist)
	youtube.Get("/recommendations/:emotion", h.middleware.NewRateLimiter, h.GetCatalogRecommendation)
}

// emotionParam lower-cases the route's emotion; unknown values are passed on
// so the engines can answer with their fallback sets.
func emotionParam(ctx *fiber.Ctx) entity.Category {
	c, _ := entity.ParseCategory(ctx.Params("emotion"))
	return c
}
