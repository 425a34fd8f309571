package routes

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"os_service_api/internal/usecase"
	"os_service_api/pkg"
	"os_service_api/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// HeaderUserID carries the operator performing the request. It ends up in the
	// created_by / updated_by audit fields.
	HeaderUserID = "X-User-ID"

	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many requests, slow down", http.StatusTooManyRequests)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}

func actorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader(HeaderUserID); actor != "" {
			c.Request = c.Request.WithContext(usecase.ContextWithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}

// requestLogger replaces gin.Logger so access logs share the service's zerolog sink.
func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var evt *zerolog.Event
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		evt.Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

const (
	limiterIdleTTL    = 10 * time.Minute
	limiterSweepEvery = 1024
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// ipRateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped on a periodic sweep.
type ipRateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	calls    atomic.Uint64
	now      func() time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{rate: rate.Limit(rps), burst: burst, idleTTL: limiterIdleTTL, now: time.Now}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	now := l.now()
	if l.calls.Add(1)%limiterSweepEvery == 0 {
		l.sweep(now)
	}

	v, ok := l.limiters.Load(ip)
	if !ok {
		v, _ = l.limiters.LoadOrStore(ip, &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)})
	}
	cl := v.(*clientLimiter)
	cl.lastSeen.Store(now.UnixNano())
	return cl.limiter
}

// sweep drops buckets not used since now-idleTTL. An idle bucket has refilled,
// so a client that comes back starts from the same state.
func (l *ipRateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-l.idleTTL).UnixNano()
	l.limiters.Range(func(k, v any) bool {
		if v.(*clientLimiter).lastSeen.Load() < cutoff {
			l.limiters.CompareAndDelete(k, v)
		}
		return true
	})
}

func rateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := newIPRateLimiter(cfg.RPS, cfg.Burst)
	return func(c *gin.Context) {
		if !limiter.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}
