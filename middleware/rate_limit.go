package middleware

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"klu-checkout/utils"
)

type RateLimiter struct {
	client *redis.Client
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Message  string
}

// Per-endpoint limits. Payment submission gets a tighter window than reads.
var defaultConfigs = map[string]RateLimitConfig{
	"/api/transactions": {
		Requests: 20,
		Window:   time.Minute,
		Message:  "Too many payment requests. Please wait a moment and try again.",
	},
	"default": {
		Requests: 60,
		Window:   time.Minute,
		Message:  "Rate limit exceeded. Please slow down your requests.",
	},
}

func NewRateLimiter(redisURL string) (*RateLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL for rate limiter: %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis for rate limiting: %v", err)
	}

	return &RateLimiter{client: client}, nil
}

func (rl *RateLimiter) Close() error {
	return rl.client.Close()
}

// Middleware applies a fixed-window limit per client IP and endpoint. Redis
// errors fail open: the request proceeds and the error is logged.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			config := ConfigForEndpoint(r.URL.Path)
			key := rl.rateLimitKey(r)

			allowed, remaining, err := rl.checkRateLimit(r.Context(), key, config)
			if err != nil {
				log.Printf("Rate limit check error: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Requests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				utils.SendErrorResponse(w, http.StatusTooManyRequests, config.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ConfigForEndpoint picks the limit for a request path, falling back to the
// default bucket.
func ConfigForEndpoint(path string) RateLimitConfig {
	for prefix, config := range defaultConfigs {
		if prefix != "default" && strings.HasPrefix(path, prefix) {
			return config
		}
	}
	return defaultConfigs["default"]
}

func (rl *RateLimiter) rateLimitKey(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if ip != "" {
		ip = strings.TrimSpace(strings.Split(ip, ",")[0])
	} else {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip = host
	}
	return fmt.Sprintf("ratelimit:%s:%s", ip, r.URL.Path)
}

func (rl *RateLimiter) checkRateLimit(ctx context.Context, key string, config RateLimitConfig) (bool, int, error) {
	count, err := rl.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, key, config.Window).Err(); err != nil {
			return false, 0, err
		}
	}

	remaining := config.Requests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return int(count) <= config.Requests, remaining, nil
}
