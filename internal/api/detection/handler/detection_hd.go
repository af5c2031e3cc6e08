package detectionHandler

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/api/detection"
	contextPkg "github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/context"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/handlerUtil"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

// DetectEmotion accepts a JSON body, or a multipart form whose "image" part
// is the frame.
func (h *DetectionHandler) DetectEmotion(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Starting emotion detection request")

	var res detection.DetectResponse
	if strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		file, err := ctx.FormFile("image")
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		frame, err := h.utils.ReadImageFile(file)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_image")
		}

		res = h.detectionService.DetectFrame(c, frame, detection.Options{
			Count:  ctx.QueryInt("count"),
			Branch: ctx.FormValue("branch"),
		})
	} else {
		var req detection.DetectRequest
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		var err error
		res, err = h.detectionService.Detect(c, req)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "detect_emotion")
		}
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *DetectionHandler) Classify(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req detection.ClassifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	det, err := h.detectionService.Classify(c, req.Features)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "classify")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"data": det})
	}
}

func (h *DetectionHandler) GetCapabilities(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"data": h.detectionService.Capabilities()})
}
