package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimit_SharedAcrossInstances(t *testing.T) {
	_, client := newRedis(t)
	cfg := RateLimitConfig{Max: 2, Window: time.Minute}
	a := RedisRateLimit(client, cfg)(okHandler())
	b := RedisRateLimit(client, cfg)(okHandler())

	codes := make([]int, 0, 3)
	for _, h := range []http.Handler{a, b, a} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.7:1"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRedisRateLimit_WindowExpires(t *testing.T) {
	mr, client := newRedis(t)
	handler := RedisRateLimit(client, RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:1"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do())
	require.Equal(t, http.StatusTooManyRequests, do())

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, do())
}

func TestRedisRateLimit_FailsOpen(t *testing.T) {
	mr, client := newRedis(t)
	handler := RedisRateLimit(client, RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())
	mr.Close()

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.3:1"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}
