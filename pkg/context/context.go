package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

const (
	RequestIDKey = log.RequestIDKey

	// requestIDHeader matches the key the request-id middleware stores in Locals.
	requestIDHeader = "X-Request-ID"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	return log.RequestIDFrom(ctx)
}

// FromFiberCtx derives a request-scoped context carrying the id set by the
// request-id middleware.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(requestIDHeader).(string)
	if !ok || requestID == "" {
		requestID = c.Get(requestIDHeader)

		if requestID == "" {
			requestID = "unknown"
		}
	}

	return WithRequestID(c.UserContext(), requestID)
}
