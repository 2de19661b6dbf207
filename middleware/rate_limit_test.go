package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigForEndpoint(t *testing.T) {
	transactions := ConfigForEndpoint("/api/transactions")
	assert.Equal(t, 20, transactions.Requests)
	assert.Equal(t, time.Minute, transactions.Window)

	// Item endpoints share the transactions bucket.
	item := ConfigForEndpoint("/api/transactions/abc")
	assert.Equal(t, transactions, item)

	fallback := ConfigForEndpoint("/api/health")
	assert.Equal(t, 60, fallback.Requests)
}

func TestRateLimitKey(t *testing.T) {
	rl := &RateLimiter{}

	t.Run("uses remote address", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/transactions", nil)
		req.RemoteAddr = "10.0.0.7:51234"

		assert.Equal(t, "ratelimit:10.0.0.7:/api/transactions", rl.rateLimitKey(req))
	})

	t.Run("prefers forwarded-for header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/transactions", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

		assert.Equal(t, "ratelimit:203.0.113.9:/api/transactions", rl.rateLimitKey(req))
	})
}

func TestNewRateLimiter_InvalidURL(t *testing.T) {
	_, err := NewRateLimiter("not-a-redis-url")
	assert.Error(t, err)
}
