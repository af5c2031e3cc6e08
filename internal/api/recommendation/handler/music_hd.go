package recommendationHandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/handlerUtil"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

func (h *RecommendationHandler) GetMusicRecommendation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing music recommendation request")

	var query recommendation.MusicQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if query.Count == 0 {
		query.Count = recommendation.DefaultTrackCount
	}

	rec := h.recommendationService.Recommend(emotionParam(ctx), query.Count)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recommendation.MusicResponse{Data: rec})
	}
}

func (h *RecommendationHandler) GetMoodPlaylist(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query recommendation.MoodPlaylistQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	playlist := h.recommendationService.MoodPlaylist(emotionParam(ctx), query.Minutes)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"data": playlist})
	}
}

func (h *RecommendationHandler) GetTransitionPlaylist(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query recommendation.TransitionQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	from, okFrom := entity.ParseCategory(query.From)
	to, okTo := entity.ParseCategory(query.To)
	if !okFrom || !okTo {
		return errHandler.Handle(ctx, requestID, recommendation.ErrUnknownEmotion, ctx.Path(), "parse_transition")
	}

	playlist := h.recommendationService.TransitionPlaylist(from, to)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"data": playlist})
	}
}
