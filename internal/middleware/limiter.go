package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"maktaba-be/internal/utils"

	"golang.org/x/time/rate"
)

// Rate limit tiers
const (
	// Login, registration and points redemption
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// Everything else
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// strictPaths are the endpoints worth brute-forcing or replaying.
var strictPaths = map[string]bool{
	"/api/login":         true,
	"/api/register":      true,
	"/api/points/redeem": true,
}

// bucket pairs a limiter with its last activity for sweeping.
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	sweepEvery = time.Minute
	staleAfter = 3 * time.Minute
)

var (
	buckets = make(map[string]*bucket)
	mu      sync.Mutex
)

func init() {
	go sweepBuckets()
}

// bucketFor retrieves or creates the rate limiter for a bucket key.
func bucketFor(key string, limit rate.Limit, burst int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	b, exists := buckets[key]
	if !exists {
		limiter := rate.NewLimiter(limit, burst)
		buckets[key] = &bucket{limiter, time.Now()}
		return limiter
	}

	b.lastSeen = time.Now()
	return b.limiter
}

// sweepBuckets removes stale entries so the map does not grow unbounded.
func sweepBuckets() {
	for {
		time.Sleep(sweepEvery)

		mu.Lock()
		for key, b := range buckets {
			if time.Since(b.lastSeen) > staleAfter {
				delete(buckets, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimitMiddleware checks if the request is allowed by the rate limiter.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := resolveRateTier(r)

		// Authenticated users get their own bucket; anonymous traffic is
		// keyed by IP.
		var identity string
		if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
			identity = fmt.Sprintf("user:%d", userID)
		} else {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			identity = "ip:" + ip
		}

		// Same user, separate quotas for strict vs general actions.
		key := fmt.Sprintf("%s:%s", identity, tier)

		limiter := bucketFor(key, limit, burst)
		if !limiter.Allow() {
			utils.WriteJSONError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// resolveRateTier determines which rate limit policy applies to the request.
func resolveRateTier(r *http.Request) (rate.Limit, int, string) {
	if strictPaths[r.URL.Path] {
		return limitStrict, burstStrict, "strict"
	}
	return limitGeneral, burstGeneral, "general"
}
