package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	mw := New(quietLogger(), DefaultConfig())
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "generated"},
		{name: "propagated", header: "req-123"},
		{name: "too long replaced", header: strings.Repeat("x", 65)},
		{name: "spaces replaced", header: "a b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDKey, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			id := resp.Header.Get(RequestIDKey)
			require.NotEmpty(t, id)
			assert.Equal(t, id, string(body))
			if validRequestID(tt.header) {
				assert.Equal(t, tt.header, id)
			} else {
				assert.Len(t, id, 26)
			}
		})
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	t.Parallel()

	mw := New(quietLogger(), DefaultConfig())
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "unknown", string(body))
}

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	mw := New(quietLogger(), Config{RateLimit: 0.001, Burst: 2})
	app := fiber.New()
	app.Get("/", mw.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	var statuses []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
		_ = resp.Body.Close()
	}

	assert.Equal(t, []int{fiber.StatusNoContent, fiber.StatusNoContent, fiber.StatusTooManyRequests}, statuses)
}

func TestNewFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	m := New(quietLogger(), Config{}).(*middleware)
	assert.Equal(t, DefaultConfig().Burst, m.rateLimitter.burstSize)
}

func TestSanitizeRequestBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "image replaced",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"image":"abcd","count":3}`,
			want:        `{"count":3,"image":"[image: 4 bytes]"}`,
		},
		{
			name:        "charset suffix",
			contentType: fiber.MIMEApplicationJSONCharsetUTF8,
			body:        `{"emotion":"happy"}`,
			want:        `{"emotion":"happy"}`,
		},
		{
			name:        "multipart",
			contentType: fiber.MIMEMultipartForm,
			body:        "--x",
			want:        "[non-JSON body]",
		},
		{
			name:        "broken json",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"image":`,
			want:        "[non-JSON body]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizeRequestBody(tt.contentType, []byte(tt.body)))
		})
	}
}
