package http

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authDomain "github.com/allisson/social/internal/auth/domain"
	apperrors "github.com/allisson/social/internal/errors"
	"github.com/allisson/social/internal/httputil"
)

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = time.Hour
)

// limiterStore keeps one token bucket per key and drops buckets idle for longer
// than limiterIdleTimeout.
type limiterStore[K comparable] struct {
	limiters sync.Map // map[K]*limiterEntry
	rps      float64
	burst    int
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func newLimiterStore[K comparable](ctx context.Context, rps float64, burst int) *limiterStore[K] {
	s := &limiterStore[K]{rps: rps, burst: burst}
	go s.cleanupStale(ctx, limiterCleanupInterval, limiterIdleTimeout)
	return s
}

func (s *limiterStore[K]) getLimiter(key K) *rate.Limiter {
	now := time.Now()
	if val, ok := s.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func (s *limiterStore[K]) removeIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if idle {
			s.limiters.Delete(key)
		}
		return true
	})
}

// cleanupStale runs until ctx is cancelled.
func (s *limiterStore[K]) cleanupStale(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.removeIdle(time.Now().Add(-idle))
		}
	}
}

// allow consumes one token or writes a 429 with Retry-After and aborts.
func allow(c *gin.Context, limiter *rate.Limiter, logger *slog.Logger, attrs ...slog.Attr) bool {
	if limiter.Allow() {
		return true
	}

	reservation := limiter.Reserve()
	retryAfter := int(math.Ceil(reservation.Delay().Seconds()))
	reservation.Cancel()

	logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "rate limit exceeded",
		append(attrs, slog.Int("retry_after", retryAfter))...)

	c.Header("Retry-After", strconv.Itoa(retryAfter))
	httputil.HandleErrorGin(c, apperrors.ErrTooManyRequests, nil)
	c.Abort()
	return false
}

// RateLimitMiddleware limits requests per resolved user. It must run after
// RequireIdentityMiddleware. The cleanup goroutine stops when ctx is cancelled.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[int64](ctx, rps, burst)

	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.Error("rate limit middleware: no identity in context")
			httputil.HandleErrorGin(c, authDomain.ErrIdentityRequired, logger)
			c.Abort()
			return
		}

		if !allow(c, store.getLimiter(identity.UserID), logger, slog.Int64("user_id", identity.UserID)) {
			return
		}
		c.Next()
	}
}

// AuthRateLimitMiddleware limits register and login attempts per client IP.
// c.ClientIP honours X-Forwarded-For and X-Real-IP for trusted proxies.
func AuthRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[string](ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !allow(c, store.getLimiter(clientIP), logger, slog.String("client_ip", clientIP)) {
			return
		}
		c.Next()
	}
}
