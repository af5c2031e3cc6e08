package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// imageFields are replaced in logged bodies; frames are large base64 blobs.
var imageFields = []string{"image", "frame", "data"}

func (m *middleware) NewLoggingMiddleware(c *fiber.Ctx) error {
	start := time.Now()

	requestID := m.GetRequestID(c)

	err := c.Next()

	latency := time.Since(start)
	status := c.Response().StatusCode()

	logFields := log.Fields{
		"request_id":    requestID,
		"method":        c.Method(),
		"path":          c.Path(),
		"status":        status,
		"latency_ms":    latency.Milliseconds(),
		"ip":            c.IP(),
		"user_agent":    c.Get("User-Agent"),
		"response_size": len(c.Response().Body()),
	}

	if body := c.Request().Body(); len(body) > 0 {
		logFields["request_body"] = sanitizeRequestBody(string(c.Request().Header.ContentType()), body)
	}

	switch {
	case status >= 500:
		m.log.WithFields(logFields).Error("Server error")
	case status >= 400:
		m.log.WithFields(logFields).Warn("Client error")
	default:
		m.log.WithFields(logFields).Info("Success")
	}

	return err
}

func sanitizeRequestBody(contentType string, body []byte) string {
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return "[non-JSON body]"
	}

	var jsonBody map[string]interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for _, field := range imageFields {
		if v, exists := jsonBody[field].(string); exists {
			jsonBody[field] = "[image: " + strconv.Itoa(len(v)) + " bytes]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
