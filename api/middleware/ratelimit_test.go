package middleware

import (
	"net/http"
	"net/http/httptest"
	"teentops_server/structs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testMiddleware() *Middleware {
	return &Middleware{
		cfg: &structs.Config{
			RateLimit: &structs.RateLimitConfig{
				Enabled:         true,
				GeneralLimit:    100,
				GeneralWindow:   time.Minute,
				ExpensiveLimit:  30,
				ExpensiveWindow: time.Minute,
				AdminLimit:      300,
				AdminWindow:     time.Minute,
			},
		},
	}
}

func TestGetRateLimitForEndpoint(t *testing.T) {
	mw := testMiddleware()

	tests := []struct {
		path     string
		method   string
		expected int
	}{
		{"/admin/orders", http.MethodGet, 300},
		{"/admin/products", http.MethodPut, 300},
		{"/products", http.MethodGet, 30},
		{"/products/featured", http.MethodGet, 30},
		{"/products/search", http.MethodGet, 30},
		{"/orders/create", http.MethodPost, 100},
		{"/reviews", http.MethodGet, 100},
	}

	for _, tt := range tests {
		limit, window := mw.getRateLimitForEndpoint(tt.path, tt.method)
		assert.Equal(t, tt.expected, limit, "path %s", tt.path)
		assert.Equal(t, time.Minute, window)
	}
}

func TestGetClientIP(t *testing.T) {
	mw := testMiddleware()

	t.Run("prefers first X-Forwarded-For entry", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		r.Header.Set("X-Real-IP", "198.51.100.2")

		assert.Equal(t, "203.0.113.7", mw.getClientIP(r))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Real-IP", "198.51.100.2")

		assert.Equal(t, "198.51.100.2", mw.getClientIP(r))
	})

	t.Run("strips port from RemoteAddr", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.44:58123"

		assert.Equal(t, "192.0.2.44", mw.getClientIP(r))
	})
}

func TestIsRateLimitExempt(t *testing.T) {
	exempt := []string{"/", "/metrics", "/health/server", "/health/database", "/contact", "/contact/info"}
	for _, path := range exempt {
		assert.True(t, isRateLimitExempt(path), "path %s should be exempt", path)
	}

	limited := []string{"/products", "/orders/create", "/admin/orders", "/reviews"}
	for _, path := range limited {
		assert.False(t, isRateLimitExempt(path), "path %s should be limited", path)
	}
}
