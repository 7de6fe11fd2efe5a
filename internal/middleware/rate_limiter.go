package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/Swoyesh/FinSense/internal/errors"
	"github.com/Swoyesh/FinSense/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore keeps one token bucket per client IP.
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

func newVisitorStore(requestsPerSecond, burst int) *visitorStore {
	return &visitorStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(s.limit, s.burst)
		s.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// evict drops visitors idle for longer than ttl and returns how many remain.
func (s *visitorStore) evict(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, v := range s.visitors {
		if time.Since(v.lastSeen) > ttl {
			delete(s.visitors, ip)
		}
	}
	return len(s.visitors)
}

// RateLimiter limits each client IP to requestsPerSecond with the given
// burst. Idle visitors are evicted until ctx is done.
func RateLimiter(ctx context.Context, requestsPerSecond, burst int) echo.MiddlewareFunc {
	store := newVisitorStore(requestsPerSecond, burst)

	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				store.evict(visitorTTL)
			}
		}
	}()

	return rateLimit(store)
}

func rateLimit(store *visitorStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// RealIP honours forwarding headers only as far as the echo
			// instance's IPExtractor trusts them
			if !store.get(c.RealIP()).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}
