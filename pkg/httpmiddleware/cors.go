package httpmiddleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	corsAllowHeaders  = "Authorization, Content-Type, X-Request-ID"
	corsExposeHeaders = "X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After"
)

// CORSConfig is the cross-origin policy of the API, filled from the app
// config.
type CORSConfig struct {
	// Origins lists the browser origins allowed to call the API. Empty or "*"
	// allows any origin.
	Origins []string
	// AllowCredentials lets browsers send cookies and auth headers. Only
	// listed origins are echoed then; a wildcard matches nothing.
	AllowCredentials bool
	// MaxAge is how long browsers may cache a preflight answer.
	MaxAge time.Duration
}

// CORS answers preflights for API operations and decorates responses to
// allowed origins. A preflight is only granted when find resolves the
// requested method and path to an operation, so browsers learn early about
// calls the API would reject anyway. The request id and rate limit headers
// are exposed to scripts.
func CORS(cfg CORSConfig, find RouteFinder) Middleware {
	anyOrigin := !cfg.AllowCredentials
	origins := make(map[string]string, len(cfg.Origins))
	for _, o := range cfg.Origins {
		if o == "*" {
			continue
		}
		origins[strings.ToLower(strings.TrimRight(o, "/"))] = o
	}
	if len(origins) > 0 {
		anyOrigin = false
	}
	maxAge := strconv.Itoa(int(cfg.MaxAge / time.Second))

	allowOrigin := func(origin string) string {
		if anyOrigin {
			return "*"
		}
		return origins[strings.ToLower(origin)]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if !anyOrigin {
				h.Add("Vary", "Origin")
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			allowed := allowOrigin(origin)

			method := r.Header.Get("Access-Control-Request-Method")
			if r.Method == http.MethodOptions && method != "" {
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				if allowed != "" && preflightMatches(find, method, r) {
					h.Set("Access-Control-Allow-Origin", allowed)
					h.Set("Access-Control-Allow-Methods", method)
					h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if cfg.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", maxAge)
					}
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func preflightMatches(find RouteFinder, method string, r *http.Request) bool {
	if find == nil {
		return true
	}
	_, ok := find(strings.ToUpper(method), r.URL)
	return ok
}
