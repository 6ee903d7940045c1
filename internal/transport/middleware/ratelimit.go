package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "http_rate_limited_requests_total",
	Help: "Intake requests rejected by the per-client rate limiter.",
})

// idleBucketTTL is how long an untouched bucket is kept before cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting for the
// anonymous intake endpoints.
type RateLimiter struct {
	buckets      sync.Map // map[string]*bucket
	trustForward bool
	stop         chan struct{}
	once         sync.Once
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Clients are keyed by the socket peer address; X-Forwarded-For is only
// consulted when trustForwardedFor is set, i.e. behind a proxy that
// overwrites the header. Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration, trustForwardedFor bool) *RateLimiter {
	rl := &RateLimiter{trustForward: trustForwardedFor, stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows maxPerMinute requests per client IP.
// A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.getBucket(clientIP(r, rl.trustForward), maxPerMinute)
			if !b.allow() {
				rateLimitedTotal.Inc()
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getBucket(key string, maxPerMinute int) *bucket {
	maxTokens := float64(maxPerMinute)

	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: time.Now(),
	})

	return val.(*bucket)
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > idleBucketTTL {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}

// clientIP returns the host part of RemoteAddr. With trustForwarded it
// prefers the first X-Forwarded-For address.
func clientIP(r *http.Request, trustForwarded bool) string {
	if fwd := r.Header.Get("X-Forwarded-For"); trustForwarded && fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
