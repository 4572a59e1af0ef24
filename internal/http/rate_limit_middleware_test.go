package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, slog.Default()))
	router.POST("/v1/cpf/validate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"valid": true})
	})
	return router
}

func sendFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cpf/validate", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_AllowsWithinBurst(t *testing.T) {
	router := newRateLimitedRouter(t, 10, 5)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, sendFrom(router, "192.0.2.1:1234").Code)
	}
}

func TestRateLimitMiddleware_BlocksAfterBurst(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 2)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, sendFrom(router, "192.0.2.1:1234").Code)
	}

	w := sendFrom(router, "192.0.2.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitMiddleware_IndependentPerIP(t *testing.T) {
	router := newRateLimitedRouter(t, 0.5, 1)

	assert.Equal(t, http.StatusOK, sendFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(router, "192.0.2.1:1234").Code)
	assert.Equal(t, http.StatusOK, sendFrom(router, "192.0.2.2:1234").Code)
}

func TestRateLimiterStore_EvictIdle(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	store.getLimiter("192.0.2.1")
	store.getLimiter("192.0.2.2")

	store.evictIdle(time.Now().Add(-time.Hour))
	_, ok := store.limiters.Load("192.0.2.1")
	assert.True(t, ok)

	store.evictIdle(time.Now().Add(time.Second))
	_, ok = store.limiters.Load("192.0.2.1")
	assert.False(t, ok)
	_, ok = store.limiters.Load("192.0.2.2")
	assert.False(t, ok)
}

func TestRateLimiterStore_CleanupStopsWithContext(t *testing.T) {
	store := &rateLimiterStore{rps: 1, burst: 1}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		store.cleanupStale(ctx, time.Millisecond, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop")
	}
}
