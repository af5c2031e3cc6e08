package timelineHandler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/timeline"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/entity"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/handlerUtil"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

func (h *TimelineHandler) GetTimeline(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get emotion timeline request")

	var query timeline.TimelineQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	view, err := h.timelineService.GetTimeline(c, query.Days)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_timeline")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, view)
	}
}

func (h *TimelineHandler) ClearTimeline(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing clear timeline request")

	if err := h.timelineService.Clear(c); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_timeline")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Timeline cleared successfully",
		})
	}
}

func (h *TimelineHandler) LogEmotion(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing log emotion request")

	var req timeline.LogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	category, ok := entity.ParseCategory(req.Emotion)
	if !ok {
		return errHandler.Handle(ctx, requestID, timeline.ErrInvalidEmotion, ctx.Path(), "parse_emotion")
	}

	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	entry, err := h.timelineService.Log(c, category, confidence, req.Extra)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "log_emotion")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{"data": entry})
	}
}

func (h *TimelineHandler) GetSessionSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query timeline.SessionQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	summary, err := h.timelineService.SessionSummary(c, query.Minutes)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "session_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}
