// Package httpmiddleware holds the net/http middleware chain of the API
// server: recovery, tracing, request ids, logging, CORS and rate limiting.
package httpmiddleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares to h. The first middleware is the outermost.
func Wrap(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// InjectLogger stores lg in every request context so handlers can use
// zctx.From.
func InjectLogger(lg *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(zctx.Base(r.Context(), lg)))
		})
	}
}

// Route is an API operation as known to the generated router.
type Route interface {
	Name() string
	OperationID() string
	PathPattern() string
}

// RouteFinder resolves the API operation a request is for.
type RouteFinder func(method string, u *url.URL) (Route, bool)

// MakeRouteFinder adapts the generated server's FindPath method.
func MakeRouteFinder[R Route](findPath func(method string, u *url.URL) (R, bool)) RouteFinder {
	return func(method string, u *url.URL) (Route, bool) {
		route, ok := findPath(method, u)
		if !ok {
			return nil, false
		}
		return route, true
	}
}

func findRoute(find RouteFinder, r *http.Request) (Route, bool) {
	if find == nil {
		return nil, false
	}
	return find(r.Method, r.URL)
}

// Telemetry provides the tracer and meter providers for HTTP instrumentation.
type Telemetry interface {
	TracerProvider() trace.TracerProvider
	MeterProvider() metric.MeterProvider
}

// Instrument starts a server span and records HTTP metrics for every API
// request. Spans are named after the operation, so ids in paths do not
// explode span cardinality; unknown routes share one name.
func Instrument(service string, find RouteFinder, m Telemetry) Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, service,
			otelhttp.WithTracerProvider(m.TracerProvider()),
			otelhttp.WithMeterProvider(m.MeterProvider()),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if route, ok := findRoute(find, r); ok {
					return route.OperationID()
				}
				return r.Method + " unknown"
			}),
			otelhttp.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/livez" && r.URL.Path != "/readyz"
			}),
		)
	}
}

// Labeler adds the route pattern to the HTTP metrics recorded by Instrument.
// It must run inside Instrument.
func Labeler(find RouteFinder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route, ok := findRoute(find, r); ok {
				labeler, _ := otelhttp.LabelerFromContext(r.Context())
				labeler.Add(attribute.String("http.route", route.PathPattern()))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LogRequests logs one line per request with its status and duration.
// Server errors are logged at warn level.
func LogRequests(find RouteFinder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := zapcore.DebugLevel
			if rec.status >= http.StatusInternalServerError {
				level = zapcore.WarnLevel
			}
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			}
			if route, ok := findRoute(find, r); ok {
				fields = append(fields, zap.String("operation", route.OperationID()))
			}
			zctx.From(r.Context()).Log(level, "Request", fields...)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// writeFailure writes the API error envelope with the content type the
// generated server uses.
func writeFailure(w http.ResponseWriter, status int, msg string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("success")
	e.Bool(false)
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
