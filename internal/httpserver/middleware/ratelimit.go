package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"webgro.in/website/internal/httpx"
	"webgro.in/website/internal/observability"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out one token bucket per key and forgets idle keys.
type KeyedLimiter struct {
	perMinute int
	burst     int
	now       func() time.Time

	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
}

// NewKeyedLimiter allows perMinute events per key with the given burst.
func NewKeyedLimiter(perMinute, burst int) *KeyedLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &KeyedLimiter{
		perMinute: perMinute,
		burst:     burst,
		now:       time.Now,
		limiters:  make(map[string]*limiterEntry),
	}
}

// Allow reports whether key may proceed now.
func (l *KeyedLimiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	l.sweepLocked(now)
	l.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

// RetryAfter is the interval after which a throttled key regains one token.
func (l *KeyedLimiter) RetryAfter() time.Duration {
	return time.Minute / time.Duration(l.perMinute)
}

// Len reports how many keys are tracked.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *KeyedLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < limiterIdleTTL {
		return
	}
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}

// RateLimit throttles requests per client IP and answers 429 when the bucket is empty.
func RateLimit(limiter *KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientIP(r)
			if limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			observability.FromContext(r.Context()).Warn("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(limiter.RetryAfter().Round(time.Second).Seconds())))
			if httpx.WantsJSON(r) || IsHTMXRequest(r.Context()) {
				httpx.WriteError(r.Context(), w, httpx.NewError("rate_limited", "too many submissions, please try again shortly", http.StatusTooManyRequests))
				return
			}
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		})
	}
}

// ClientIP returns the request's remote host. chi's RealIP middleware has already
// replaced RemoteAddr with the forwarded address when present.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
