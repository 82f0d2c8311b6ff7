/*
Package limiter provides request rate limiting keyed by caller identity.

It uses the token bucket algorithm (rate.Limiter) to bound the request
frequency per key (authenticated user id, falling back to client IP) and
runs a cleanup goroutine that removes idle buckets to prevent memory growth.
*/
package limiter

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"hpzbot/internal/pkg/errs"
	"hpzbot/internal/pkg/logx"
	"hpzbot/internal/pkg/resp"

	"golang.org/x/time/rate"
)

// KeyFunc extracts the rate-limit key for a request. An empty return falls
// back to the client IP.
type KeyFunc func(r *http.Request) string

// KeyRateLimiter implements a per-key token bucket rate limiter.
type KeyRateLimiter struct {
	// mu protects concurrent access to the limits map.
	mu *sync.RWMutex

	// limits maps a request key to its *rate.Limiter instance.
	limits map[string]*rate.Limiter

	// r is the refill rate, derived from points per window.
	r rate.Limit

	// b is the bucket size: the configured request budget per window.
	b int

	// keyFn resolves the limit key for each request.
	keyFn KeyFunc
}

// New creates a KeyRateLimiter allowing `points` requests per `window`,
// and starts a background goroutine that periodically drops full (idle)
// buckets.
func New(points int, window time.Duration, keyFn KeyFunc) *KeyRateLimiter {
	k := &KeyRateLimiter{
		mu:     &sync.RWMutex{},
		limits: make(map[string]*rate.Limiter),
		r:      rate.Limit(float64(points) / window.Seconds()),
		b:      points,
		keyFn:  keyFn,
	}

	go k.cleanUpVisitors()

	return k
}

// GetLimiter returns the limiter for the given key, creating it on first
// use. Double-checked locking keeps creation concurrent-safe.
func (k *KeyRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.RLock()
	limiter, exists := k.limits[key]
	k.mu.RUnlock()

	if !exists {
		k.mu.Lock()
		limiter, exists = k.limits[key]
		if !exists {
			limiter = rate.NewLimiter(k.r, k.b)
			k.limits[key] = limiter
		}
		k.mu.Unlock()
	}

	return limiter
}

// cleanUpVisitors periodically removes limiters whose bucket is full again,
// i.e. keys that have been idle for at least a full window.
func (k *KeyRateLimiter) cleanUpVisitors() {
	ticker := time.NewTicker(3 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		k.mu.Lock()
		count := 0
		for key, limiter := range k.limits {
			if limiter.TokensAt(time.Now()) >= float64(limiter.Burst()) {
				delete(k.limits, key)
				count++
			}
		}
		remaining := len(k.limits)
		k.mu.Unlock()
		logx.Info("Rate limiter cleanup finished", "removed", count, "active", remaining)
	}
}

// ClientIP extracts the bare IP from the request's RemoteAddr.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if ip == "" {
		ip = "unknown_ip"
	}

	return ip
}

// Middleware enforces the rate limit on incoming requests. Rejected
// requests receive HTTP 429 with X-RateLimit-Limit/Remaining/Reset headers
// and a JSON body stating the retry delay in seconds.
func (k *KeyRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ""
		if k.keyFn != nil {
			key = k.keyFn(r)
		}
		if key == "" {
			key = ClientIP(r)
		}

		limiter := k.GetLimiter(key)

		reservation := limiter.Reserve()
		delay := reservation.Delay()
		if !reservation.OK() || delay > 0 {
			reservation.Cancel()

			retryAfter := int(math.Ceil(delay.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}

			remaining := int(limiter.TokensAt(time.Now()))
			if remaining < 0 {
				remaining = 0
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(k.b))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.Itoa(retryAfter))

			resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded, retryAfter))
			return
		}

		next.ServeHTTP(w, r)
	})
}
