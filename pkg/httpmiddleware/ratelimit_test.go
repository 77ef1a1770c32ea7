package httpmiddleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// limiterBackends builds the same policy on every limiter the server can run
// with, so behaviour that must not depend on the backend is checked on both.
func limiterBackends(t *testing.T) map[string]func(RateLimitConfig) Middleware {
	return map[string]func(RateLimitConfig) Middleware{
		"memory": RateLimit,
		"redis": func(cfg RateLimitConfig) Middleware {
			_, client := newRedis(t)
			return RedisRateLimit(client, cfg)
		},
	}
}

type call struct {
	method string
	path   string
	client string
	header map[string]string
}

func (c call) do(h http.Handler) *httptest.ResponseRecorder {
	method := c.method
	if method == "" {
		method = http.MethodPost
	}
	req := httptest.NewRequest(method, c.path, nil)
	req.RemoteAddr = c.client + ":40000"
	for k, v := range c.header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit_Budget(t *testing.T) {
	checkout := call{path: "/api/orders/payment-intent", client: "192.0.2.10"}

	tests := []struct {
		name  string
		calls []call
		want  []int
	}{
		{
			name:  "checkout retries within budget",
			calls: []call{checkout, checkout},
			want:  []int{http.StatusOK, http.StatusOK},
		},
		{
			name:  "third checkout attempt is throttled",
			calls: []call{checkout, checkout, checkout},
			want:  []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name: "clients have separate budgets",
			calls: []call{
				checkout, checkout,
				{path: "/api/orders", client: "192.0.2.11"},
			},
			want: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
		{
			name: "first forwarded address is the client",
			calls: []call{
				{path: "/api/orders", client: "10.0.0.1", header: map[string]string{"X-Forwarded-For": "203.0.113.50, 10.0.0.1"}},
				{path: "/api/orders", client: "10.0.0.2", header: map[string]string{"X-Forwarded-For": "203.0.113.50, 10.0.0.2"}},
				{path: "/api/orders", client: "10.0.0.3", header: map[string]string{"X-Real-IP": "203.0.113.50"}},
			},
			want: []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name: "health endpoints are not counted",
			calls: []call{
				{method: http.MethodGet, path: "/readyz", client: "192.0.2.10"},
				{method: http.MethodGet, path: "/livez", client: "192.0.2.10"},
				{method: http.MethodGet, path: "/readyz", client: "192.0.2.10"},
				checkout, checkout,
			},
			want: []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusOK, http.StatusOK},
		},
	}

	for backend, newLimiter := range limiterBackends(t) {
		for _, tt := range tests {
			t.Run(backend+"/"+tt.name, func(t *testing.T) {
				h := newLimiter(RateLimitConfig{
					Max:    2,
					Window: time.Minute,
					Exempt: func(r *http.Request) bool {
						return r.URL.Path == "/livez" || r.URL.Path == "/readyz"
					},
				})(okHandler())

				got := make([]int, len(tt.calls))
				for i, c := range tt.calls {
					got[i] = c.do(h).Code
				}
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestRateLimit_ThrottledResponse(t *testing.T) {
	for backend, newLimiter := range limiterBackends(t) {
		t.Run(backend, func(t *testing.T) {
			h := newLimiter(RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())
			c := call{path: "/api/orders/payment-confirm", client: "198.51.100.4"}

			first := c.do(h)
			require.Equal(t, http.StatusOK, first.Code)
			assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))
			assert.NotEmpty(t, first.Header().Get("X-RateLimit-Reset"))

			w := c.do(h)
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			assert.JSONEq(t, `{"success":false,"error":"rate limit exceeded"}`, w.Body.String())
		})
	}
}

func TestRateLimit_PerCustomerKey(t *testing.T) {
	// Keying by bearer token throttles one customer without touching others
	// behind the same NAT.
	h := RateLimit(RateLimitConfig{
		Max:    1,
		Window: time.Minute,
		KeyFunc: func(r *http.Request) string {
			return r.Header.Get("Authorization")
		},
	})(okHandler())

	alice := call{path: "/api/orders", client: "203.0.113.9", header: map[string]string{"Authorization": "Bearer alice"}}
	bob := call{path: "/api/orders", client: "203.0.113.9", header: map[string]string{"Authorization": "Bearer bob"}}

	assert.Equal(t, http.StatusOK, alice.do(h).Code)
	assert.Equal(t, http.StatusTooManyRequests, alice.do(h).Code)
	assert.Equal(t, http.StatusOK, bob.do(h).Code)
}

func TestRateLimit_SlidingWindowCarriesPreviousWindow(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{Max: 4, Window: time.Minute})
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for range 4 {
		_, _, ok := rl.take("k", start)
		require.True(t, ok)
	}
	// A quarter into the next window three quarters of the old count still
	// apply: 4*0.75 = 3, so exactly one more request fits.
	next := start.Add(time.Minute + 15*time.Second)
	_, _, ok := rl.take("k", next)
	assert.True(t, ok)
	_, _, ok = rl.take("k", next)
	assert.False(t, ok)

	rl.cleanup(start.Add(5 * time.Minute))
	assert.Empty(t, rl.entries)
}
