package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// switchable is a dependency whose availability the test controls.
type switchable struct{ down atomic.Bool }

func (s *switchable) check(context.Context) error {
	if s.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

type body struct {
	Status string `json:"status"`
	Checks map[string]struct {
		Status string `json:"status"`
		Error  string `json:"error"`
		Since  string `json:"since"`
	} `json:"checks"`
}

func get(t *testing.T, endpoint http.HandlerFunc) (int, body) {
	t.Helper()
	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var b body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b), w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	return w.Code, b
}

// newServerHealth registers the checks the API server runs with: the
// database is critical, the limiter's Redis and the payment gateway only
// degrade the service.
func newServerHealth() (*Health, map[string]*switchable) {
	deps := map[string]*switchable{"postgres": {}, "redis": {}, "payment_gateway": {}}
	h := New()
	h.Register(Readiness, Check{Name: "postgres", Func: deps["postgres"].check})
	h.Register(Readiness, Check{Name: "redis", Func: deps["redis"].check, Severity: Degraded})
	h.Register(Readiness, Check{Name: "payment_gateway", Func: deps["payment_gateway"].check, Severity: Degraded, FailureThreshold: 1})
	h.Register(Liveness, Check{Name: "goroutines", Func: GoroutineCountCheck(100000)})
	return h, deps
}

func TestReadyEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		down       []string
		runs       int
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "all dependencies up",
			runs:       1,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantChecks: map[string]string{"postgres": "ok", "redis": "ok", "payment_gateway": "ok"},
		},
		{
			name:       "database blip below threshold",
			down:       []string{"postgres"},
			runs:       2,
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantChecks: map[string]string{"postgres": "ok"},
		},
		{
			name:       "database down",
			down:       []string{"postgres"},
			runs:       3,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantChecks: map[string]string{"postgres": "failing", "redis": "ok"},
		},
		{
			name:       "limiter redis down keeps serving",
			down:       []string{"redis"},
			runs:       3,
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: map[string]string{"postgres": "ok", "redis": "degraded"},
		},
		{
			name:       "gateway failing keeps serving",
			down:       []string{"payment_gateway"},
			runs:       1,
			wantCode:   http.StatusOK,
			wantStatus: "degraded",
			wantChecks: map[string]string{"payment_gateway": "degraded"},
		},
		{
			name:       "database outranks degraded dependencies",
			down:       []string{"redis", "postgres", "payment_gateway"},
			runs:       3,
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantChecks: map[string]string{"postgres": "failing", "redis": "degraded", "payment_gateway": "degraded"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newServerHealth()
			h.SetReady(true)
			for _, name := range tt.down {
				deps[name].down.Store(true)
			}
			for range tt.runs {
				h.RunOnce(context.Background())
			}

			code, b := get(t, h.ReadyEndpoint)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStatus, b.Status)
			for name, want := range tt.wantChecks {
				assert.Equal(t, want, b.Checks[name].Status, name)
				if want != "ok" {
					assert.Equal(t, "connection refused", b.Checks[name].Error)
					assert.NotEmpty(t, b.Checks[name].Since)
				}
			}
			assert.Equal(t, tt.wantCode == http.StatusOK, h.IsReady())
		})
	}
}

func TestReadyEndpoint_Draining(t *testing.T) {
	h, _ := newServerHealth()
	h.RunOnce(context.Background())

	code, b := get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "failing", b.Checks["startup"].Status)

	h.SetReady(true)
	code, _ = get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)

	h.SetReady(false)
	code, _ = get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, h.IsReady())
}

func TestCheck_RecoversAfterOneSuccess(t *testing.T) {
	h, deps := newServerHealth()
	h.SetReady(true)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	deps["postgres"].down.Store(true)
	for range 3 {
		h.RunOnce(context.Background())
	}
	_, b := get(t, h.ReadyEndpoint)
	assert.Equal(t, "2026-05-01T09:00:00Z", b.Checks["postgres"].Since)

	deps["postgres"].down.Store(false)
	h.RunOnce(context.Background())
	code, b := get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", b.Checks["postgres"].Status)
	assert.Empty(t, b.Checks["postgres"].Error)
}

func TestCheck_Timeout(t *testing.T) {
	h := New()
	h.SetReady(true)
	h.Register(Readiness, Check{
		Name:             "postgres",
		Timeout:          10 * time.Millisecond,
		FailureThreshold: 1,
		Func: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	h.RunOnce(context.Background())

	code, b := get(t, h.ReadyEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, b.Checks["postgres"].Error, "deadline exceeded")
}

func TestLiveEndpoint(t *testing.T) {
	h := New()
	h.Register(Liveness, Check{Name: "goroutines", Func: GoroutineCountCheck(1), FailureThreshold: 1})
	h.RunOnce(context.Background())

	// Liveness does not depend on readiness.
	code, b := get(t, h.LiveEndpoint)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, b.Checks["goroutines"].Error, "exceeds threshold 1")
}

func TestStartStop(t *testing.T) {
	h, deps := newServerHealth()
	h.SetReady(true)
	deps["payment_gateway"].down.Store(true)

	h.Start(context.Background(), time.Millisecond)
	require.Eventually(t, func() bool {
		_, b := get(t, h.ReadyEndpoint)
		return b.Status == "degraded"
	}, time.Second, 5*time.Millisecond)

	h.Stop()
	h.Stop()
}

func TestRedisCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	check := RedisCheck(client)
	require.NoError(t, check(context.Background()))

	mr.Close()
	err := check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}

func TestPingCheck(t *testing.T) {
	err := PingCheck(func(context.Context) error { return errors.New("no route to host") })(context.Background())
	require.Error(t, err)
	assert.Equal(t, "ping: no route to host", err.Error())
}
