package recommendationHandler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/handlerUtil"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

func (h *RecommendationHandler) GetCatalogRecommendation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing catalog recommendation request")

	rec, err := h.recommendationService.Catalog(c, emotionParam(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "catalog_recommendation")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recommendation.CatalogResponse{Data: rec})
	}
}

func (h *RecommendationHandler) GetCatalogStatus(ctx *fiber.Ctx) error {
	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, h.recommendationService.CatalogStatus())
}

func (h *RecommendationHandler) SearchYouTube(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query recommendation.SearchQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	tracks, err := h.recommendationService.SearchYouTube(c, query.Q, query.Limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "youtube_search")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recommendation.TracksResponse{Data: tracks})
	}
}

func (h *RecommendationHandler) GetYouTubePlaylist(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	playlistID := ctx.Params("id")
	if playlistID == "" {
		return errHandler.HandleValidationError(ctx, requestID, errors.New("playlist id is required"), ctx.Path())
	}

	tracks, err := h.recommendationService.YouTubePlaylist(c, playlistID, ctx.QueryInt("limit"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "youtube_playlist")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recommendation.TracksResponse{Data: tracks})
	}
}
