package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Rrens/taskchat/internal/api/response"
	"github.com/Rrens/taskchat/internal/repository/redis"
	"github.com/rs/zerolog/log"
)

// Limiter decides whether a client key may make another request
type Limiter interface {
	Allow(ctx context.Context, key string) (redis.Decision, error)
}

// RateLimitMiddleware handles rate limiting
type RateLimitMiddleware struct {
	limiter Limiter
	message string
}

// NewRateLimitMiddleware creates a new rate limit middleware. message is sent when the limit is hit.
func NewRateLimitMiddleware(limiter Limiter, message string) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, message: message}
}

// Limit applies rate limiting based on the client IP
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, err := m.limiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			// If rate limiter fails, allow the request but log the error
			log.Warn().Err(err).Msg("Rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}

		reset := int(time.Until(decision.ResetAt).Round(time.Second).Seconds())
		if reset < 0 {
			reset = 0
		}
		w.Header().Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		w.Header().Set("RateLimit-Reset", strconv.Itoa(reset))

		if !decision.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(reset))
			response.TooManyRequests(w, m.message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port chi's RealIP leaves on RemoteAddr when no proxy header is set
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
