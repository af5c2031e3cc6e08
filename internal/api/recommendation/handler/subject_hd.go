package recommendationHandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/recommendation"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/handlerUtil"
)

func (h *RecommendationHandler) GetSubjectSuggestion(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query recommendation.SubjectQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	suggestion := h.recommendationService.Suggest(emotionParam(ctx), query.Branch, time.Now())

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"data": suggestion})
	}
}

func (h *RecommendationHandler) GetWeeklyPlan(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query recommendation.SubjectQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	plan := h.recommendationService.WeeklyPlan(emotionParam(ctx), query.Branch)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"data": plan})
	}
}
