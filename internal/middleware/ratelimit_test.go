// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func suggestRequest(limiter *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
	return forwardedRequest(limiter, remoteAddr, "", nil)
}

// forwardedRequest sends one call through the middleware on an engine that
// trusts only the given proxies
func forwardedRequest(limiter *RateLimiter, remoteAddr, forwardedFor string, trusted []string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetTrustedProxies(trusted)
	c.Request = httptest.NewRequest("POST", "/api/suggest", nil)
	c.Request.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		c.Request.Header.Set("X-Forwarded-For", forwardedFor)
	}

	RateLimitMiddleware(limiter)(c)
	return w
}

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)

	w := suggestRequest(limiter, "10.0.0.1:1234")
	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if w.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("Expected X-RateLimit-Remaining: 4, got %s", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)

	for i := 0; i < 2; i++ {
		if w := suggestRequest(limiter, "10.0.0.1:1234"); w.Code == 429 {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	w := suggestRequest(limiter, "10.0.0.1:1234")
	if w.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w.Header().Get("X-RateLimit-Limit"))
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
}

func TestRateLimitPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)

	suggestRequest(limiter, "10.0.0.1:1234")
	if w := suggestRequest(limiter, "10.0.0.2:1234"); w.Code == 429 {
		t.Error("A different client should have its own bucket")
	}
}

func TestRateLimitRefills(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Fatal("first call should pass")
	}
	if ok, _ := limiter.Allow("10.0.0.1"); ok {
		t.Fatal("second call should be limited")
	}

	now = now.Add(time.Minute + time.Second)
	if ok, _ := limiter.Allow("10.0.0.1"); !ok {
		t.Error("bucket should refill after the interval")
	}
}

func TestRateLimitSweepDropsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(3 * time.Minute)
	limiter.sweep()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if len(limiter.buckets) != 0 {
		t.Errorf("expected idle bucket to be dropped, have %d", len(limiter.buckets))
	}
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0, time.Minute)
	for i := 0; i < 20; i++ {
		if w := suggestRequest(limiter, "10.0.0.1:1234"); w.Code == 429 {
			t.Fatal("zero capacity should disable limiting")
		}
	}
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)

	if w := forwardedRequest(limiter, "10.0.0.1:1234", "203.0.113.1", nil); w.Code == 429 {
		t.Fatal("first request should be allowed")
	}
	// a rotated header must not buy a fresh bucket
	if w := forwardedRequest(limiter, "10.0.0.1:1234", "203.0.113.2", nil); w.Code != 429 {
		t.Errorf("Expected 429 with spoofed X-Forwarded-For, got %d", w.Code)
	}
}

func TestRateLimitHonorsForwardedForFromTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	proxies := []string{"10.0.0.1"}

	if w := forwardedRequest(limiter, "10.0.0.1:1234", "203.0.113.1", proxies); w.Code == 429 {
		t.Fatal("first client should be allowed")
	}
	if w := forwardedRequest(limiter, "10.0.0.1:1234", "203.0.113.2", proxies); w.Code == 429 {
		t.Error("second client behind the proxy should have its own bucket")
	}
	if w := forwardedRequest(limiter, "10.0.0.1:1234", "203.0.113.1", proxies); w.Code != 429 {
		t.Errorf("first client again: expected 429, got %d", w.Code)
	}
}

func TestRateLimitSweepsDuringAllow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(3 * time.Minute)
	limiter.Allow("10.0.0.2")

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if _, ok := limiter.buckets["10.0.0.1"]; ok {
		t.Error("idle bucket should have been dropped by a later call")
	}
	if len(limiter.buckets) != 1 {
		t.Errorf("expected 1 bucket, have %d", len(limiter.buckets))
	}
}

func TestNewRateLimiterStartsNoGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 50; i++ {
		NewRateLimiter(5, time.Minute)
	}
	if after := runtime.NumGoroutine(); after >= before+50 {
		t.Errorf("goroutines grew from %d to %d", before, after)
	}
}
