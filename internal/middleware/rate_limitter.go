package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	bucket    map[string]*rate.Limiter
	rate      rate.Limit
	burstSize int
	mutex     sync.Mutex
}

func newRateLimiter(reqRate rate.Limit, burstSize int) *rateLimiter {
	return &rateLimiter{
		bucket:    make(map[string]*rate.Limiter),
		rate:      reqRate,
		burstSize: burstSize,
	}
}

func (r *rateLimiter) limiterFor(ip string) *rate.Limiter {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	l, ok := r.bucket[ip]
	if !ok {
		l = rate.NewLimiter(r.rate, r.burstSize)
		r.bucket[ip] = l
	}
	return l
}

// NewRateLimiter throttles per client IP.
func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	clientIP := ctx.IP()

	if !m.rateLimitter.limiterFor(clientIP).Allow() {
		m.log.Warnf("too many requests for IP %s", clientIP)
		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many requests",
		})
	}

	return ctx.Next()
}
