package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/ustwo-backend/pkg/ctxutil"
)

// idleBucketTTL is how long an untouched bucket survives cleanup.
const idleBucketTTL = 10 * time.Minute

// RateLimiter is a token bucket per guild. Requests without a tenant in the
// context fall back to the remote address.
type RateLimiter struct {
	buckets sync.Map // map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a RateLimiter whose idle buckets are dropped every
// cleanupInterval until ctx is done.
func NewRateLimiter(ctx context.Context, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{now: time.Now}
	go rl.cleanup(ctx, cleanupInterval)
	return rl
}

// Limit allows each guild perMinute requests per minute with bursts up to
// perMinute. perMinute <= 0 disables limiting.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(60/perMinute + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucketFor(rateKey(r), perMinute).take(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rateKey(r *http.Request) string {
	if tenant, ok := ctxutil.TenantIDFromCtx(r.Context()); ok {
		return "guild:" + tenant.String()
	}
	return "addr:" + r.RemoteAddr
}

func (rl *RateLimiter) bucketFor(key string, perMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		limiter:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		lastSeen: rl.now(),
	})
	return b.(*bucket)
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	b.lastSeen = now
	b.mu.Unlock()
	return b.limiter.AllowN(now, 1)
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastSeen)
}

func (rl *RateLimiter) cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > idleBucketTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
