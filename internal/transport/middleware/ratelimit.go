package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/editorial-backend/pkg/ctxutil"
)

const (
	throttledDetail = "Demasiados intentos. Inténtalo de nuevo más tarde."
	bucketIdleTTL   = 10 * time.Minute
)

// RateLimiter keeps one token bucket per (route, client host). Each Limit
// call declares its own budget, so login and any other throttled route do
// not share tokens.
type RateLimiter struct {
	log *slog.Logger
	now func() time.Time

	mu      sync.Mutex
	buckets map[bucketKey]*bucket
	stop    chan struct{}
	once    sync.Once
}

type bucketKey struct {
	route string
	host  string
}

type bucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	last     time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		log:     logger.With("component", "ratelimit"),
		now:     time.Now,
		buckets: make(map[bucketKey]*bucket),
		stop:    make(chan struct{}),
	}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client host on the wrapped route,
// refilled continuously. Rejections get 429 with Retry-After.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bucketKey{route: r.Method + " " + r.URL.Path, host: clientIP(r)}
			wait, ok := rl.take(key, perMinute)
			if !ok {
				rl.log.WarnContext(r.Context(), "request throttled",
					slog.String("route", key.route),
					slog.String("client", key.host),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeDetail(w, http.StatusTooManyRequests, throttledDetail)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token. When the bucket is empty it reports how long until
// the next token.
func (rl *RateLimiter) take(key bucketKey, perMinute int) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{
			tokens:   float64(perMinute),
			capacity: float64(perMinute),
			perSec:   float64(perMinute) / 60,
			last:     now,
		}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(b.capacity, b.tokens+now.Sub(b.last).Seconds()*b.perSec)
	b.last = now

	if b.tokens < 1 {
		missing := (1 - b.tokens) / b.perSec
		return time.Duration(missing * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for k, b := range rl.buckets {
				if now.Sub(b.last) > bucketIdleTTL {
					delete(rl.buckets, k)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// clientIP is the connection's host without the source port, so reconnects
// share one budget.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
