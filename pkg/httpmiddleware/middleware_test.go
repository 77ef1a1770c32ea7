package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(okHandler(), mark("outer"), mark("middle"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "middle", "inner"}, order)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated", "", false},
		{"echoed", "custom-request-id-12345", true},
		{"control characters replaced", "bad\nid", false},
		{"too long replaced", strings.Repeat("a", 129), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/livez", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			require.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	h := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	assert.JSONEq(t, `{"success":false,"error":"internal server error"}`, w.Body.String())
}

type testRoute struct{ op, pattern string }

func (r testRoute) Name() string        { return r.op }
func (r testRoute) OperationID() string { return r.op }
func (r testRoute) PathPattern() string { return r.pattern }

// apiRoutes resolves a small slice of the order API.
func apiRoutes() RouteFinder {
	return MakeRouteFinder(func(method string, u *url.URL) (testRoute, bool) {
		switch {
		case method == http.MethodPost && u.Path == "/api/orders":
			return testRoute{"createOrder", "/orders"}, true
		case method == http.MethodPatch && strings.HasPrefix(u.Path, "/api/orders/") && strings.HasSuffix(u.Path, "/status"):
			return testRoute{"updateOrderStatus", "/orders/{id}/status"}, true
		}
		return testRoute{}, false
	})
}

func preflight(h http.Handler, origin, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", method)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCORS_Preflight(t *testing.T) {
	tests := []struct {
		name       string
		cfg        CORSConfig
		origin     string
		method     string
		path       string
		wantOrigin string
	}{
		{
			name:       "any origin, known operation",
			cfg:        CORSConfig{Origins: []string{"*"}, MaxAge: 10 * time.Minute},
			origin:     "http://shop.example",
			method:     http.MethodPatch,
			path:       "/api/orders/42/status",
			wantOrigin: "*",
		},
		{
			name:   "unknown operation",
			cfg:    CORSConfig{Origins: []string{"*"}},
			origin: "http://shop.example",
			method: http.MethodDelete,
			path:   "/api/orders/42",
		},
		{
			name:       "listed origin echoed in configured case",
			cfg:        CORSConfig{Origins: []string{"https://Shop.example"}, AllowCredentials: true},
			origin:     "https://shop.example",
			method:     http.MethodPost,
			path:       "/api/orders",
			wantOrigin: "https://Shop.example",
		},
		{
			name:   "credentials never match a wildcard",
			cfg:    CORSConfig{Origins: []string{"*"}, AllowCredentials: true},
			origin: "https://shop.example",
			method: http.MethodPost,
			path:   "/api/orders",
		},
		{
			name:   "unlisted origin",
			cfg:    CORSConfig{Origins: []string{"https://shop.example"}},
			origin: "https://evil.example",
			method: http.MethodPost,
			path:   "/api/orders",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := preflight(CORS(tt.cfg, apiRoutes())(okHandler()), tt.origin, tt.method, tt.path)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin == "" {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
				return
			}
			assert.Equal(t, tt.method, w.Header().Get("Access-Control-Allow-Methods"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			if tt.cfg.AllowCredentials {
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.cfg.MaxAge > 0 {
				assert.Equal(t, "600", w.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestCORS_ActualRequest(t *testing.T) {
	h := CORS(CORSConfig{Origins: []string{"https://shop.example"}}, apiRoutes())(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-RateLimit-Remaining")
	assert.Equal(t, []string{"Origin"}, w.Header().Values("Vary"))

	// Same-origin calls pass untouched.
	req = httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLabeler(t *testing.T) {
	var labeler *otelhttp.Labeler
	h := Labeler(apiRoutes())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	for _, path := range []string{"/api/orders/7/status", "/api/nowhere"} {
		labeler = &otelhttp.Labeler{}
		ctx := otelhttp.ContextWithLabeler(context.Background(), labeler)
		req := httptest.NewRequest(http.MethodPatch, path, nil).WithContext(ctx)
		h.ServeHTTP(httptest.NewRecorder(), req)

		if path == "/api/nowhere" {
			assert.Empty(t, labeler.Get())
			continue
		}
		require.Len(t, labeler.Get(), 1)
		assert.Equal(t, "http.route", string(labeler.Get()[0].Key))
		assert.Equal(t, "/orders/{id}/status", labeler.Get()[0].Value.AsString())
	}
}
func TestLogRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	teapot := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
	})
	failing := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	for _, h := range []http.Handler{teapot, failing} {
		chain := Wrap(h, InjectLogger(zap.New(core)), LogRequests(apiRoutes()))
		chain.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/orders", nil))
	}

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusTeapot), entries[0].ContextMap()["status"])
	assert.Equal(t, "/api/orders", entries[0].ContextMap()["path"])
	assert.Equal(t, "createOrder", entries[0].ContextMap()["operation"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(http.StatusBadGateway), entries[1].ContextMap()["status"])
}
