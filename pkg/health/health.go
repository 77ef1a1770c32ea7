// Package health serves the /livez and /readyz endpoints of the API server.
//
// Dependencies register checks that run in the background at a fixed
// interval; the endpoints only report the last outcome, so a hanging
// database never slows down the orchestrator polling the server.
//
// A check flips to failing after FailureThreshold consecutive errors and
// back after one success. Critical checks take the server out of rotation;
// degraded ones are reported but leave it serving, for dependencies the
// server can work around.
package health

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"
)

// CheckFunc returns nil while the checked dependency is usable.
type CheckFunc func(ctx context.Context) error

// Severity says what a failing check means for the server.
type Severity int

const (
	// Critical failures make the endpoint answer 503.
	Critical Severity = iota
	// Degraded failures are listed, but the endpoint still answers 200.
	Degraded
)

// Kind selects the endpoint a check reports on.
type Kind int

const (
	Liveness Kind = iota
	Readiness
)

// Check is one registered dependency check.
type Check struct {
	Name     string
	Func     CheckFunc
	Timeout  time.Duration
	Severity Severity
	// FailureThreshold is the number of consecutive errors before the check
	// fails. Defaults to 3.
	FailureThreshold int
}

type checkState struct {
	Check

	mu      sync.Mutex
	fails   int
	failing bool
	lastErr error
	since   time.Time
}

func (c *checkState) run(ctx context.Context, now func() time.Time) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	err := c.Func(ctx)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
	switch {
	case err == nil:
		c.fails = 0
		if c.failing {
			c.failing, c.since = false, now()
		}
	default:
		c.fails++
		if !c.failing && c.fails >= c.FailureThreshold {
			c.failing, c.since = true, now()
		}
	}
}

type checkReport struct {
	name     string
	severity Severity
	failing  bool
	err      error
	since    time.Time
}

func (c *checkState) report() checkReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return checkReport{
		name:     c.Name,
		severity: c.Severity,
		failing:  c.failing,
		err:      c.lastErr,
		since:    c.since,
	}
}

// Health runs the registered checks and serves their state.
type Health struct {
	now func() time.Time

	mu     sync.Mutex
	ready  bool
	checks map[Kind][]*checkState
	cancel context.CancelFunc
	group  *errgroup.Group
}

// New returns a Health that is not ready until SetReady(true).
func New() *Health {
	return &Health{now: time.Now, checks: make(map[Kind][]*checkState)}
}

// Register adds a check. Register every check before Start.
func (h *Health) Register(kind Kind, c Check) {
	if c.Timeout <= 0 {
		c.Timeout = time.Second
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 3
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[kind] = append(h.checks[kind], &checkState{Check: c})
}

func (h *Health) all() []*checkState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Concat(h.checks[Liveness], h.checks[Readiness])
}

func (h *Health) ofKind(kind Kind) []*checkState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.checks[kind])
}

// RunOnce runs every check once, concurrently, and returns when all are done.
func (h *Health) RunOnce(ctx context.Context) {
	var g errgroup.Group
	for _, c := range h.all() {
		g.Go(func() error {
			c.run(ctx, h.now)
			return nil
		})
	}
	_ = g.Wait()
}

// Start runs every check immediately and then every interval until Stop or
// ctx is done.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range h.all() {
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				c.run(ctx, h.now)
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
				}
			}
		})
	}

	h.mu.Lock()
	h.cancel, h.group = cancel, g
	h.mu.Unlock()
}

// Stop cancels the background checks and waits for them to return. It is
// safe to call more than once.
func (h *Health) Stop() {
	h.mu.Lock()
	cancel, g := h.cancel, h.group
	h.cancel, h.group = nil, nil
	h.mu.Unlock()

	if cancel != nil {
		cancel()
		_ = g.Wait()
	}
}

// SetReady marks the server ready after startup, or draining on shutdown.
func (h *Health) SetReady(ready bool) {
	h.mu.Lock()
	h.ready = ready
	h.mu.Unlock()
}

// IsReady reports whether the server is marked ready and no critical
// readiness check is failing.
func (h *Health) IsReady() bool {
	h.mu.Lock()
	ready := h.ready
	h.mu.Unlock()
	return ready && status(h.reports(Readiness)) != statusUnhealthy
}

func (h *Health) reports(kind Kind) []checkReport {
	checks := h.ofKind(kind)
	out := make([]checkReport, len(checks))
	for i, c := range checks {
		out[i] = c.report()
	}
	return out
}

const (
	statusOK        = "ok"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

func status(reports []checkReport) string {
	s := statusOK
	for _, r := range reports {
		if !r.failing {
			continue
		}
		if r.severity == Critical {
			return statusUnhealthy
		}
		s = statusDegraded
	}
	return s
}

// LiveEndpoint serves /livez.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	reports := h.reports(Liveness)
	writeResponse(w, status(reports), reports)
}

// ReadyEndpoint serves /readyz. A server that is draining answers 503 even
// with every check passing.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	reports := h.reports(Readiness)
	st := status(reports)

	h.mu.Lock()
	ready := h.ready
	h.mu.Unlock()
	if !ready {
		st = statusUnhealthy
		reports = append(reports, checkReport{
			name:    "startup",
			failing: true,
			err:     errNotReady,
		})
	}
	writeResponse(w, st, reports)
}

var errNotReady = errors.New("server is not ready")

func writeResponse(w http.ResponseWriter, st string, reports []checkReport) {
	slices.SortFunc(reports, func(a, b checkReport) int {
		return strings.Compare(a.name, b.name)
	})

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("status")
	e.Str(st)
	if len(reports) > 0 {
		e.FieldStart("checks")
		e.ObjStart()
		for _, r := range reports {
			e.FieldStart(r.name)
			e.ObjStart()
			e.FieldStart("status")
			switch {
			case !r.failing:
				e.Str(statusOK)
			case r.severity == Critical:
				e.Str("failing")
			default:
				e.Str(statusDegraded)
			}
			if r.failing && r.err != nil {
				e.FieldStart("error")
				e.Str(r.err.Error())
			}
			if r.failing && !r.since.IsZero() {
				e.FieldStart("since")
				e.Str(r.since.UTC().Format(time.RFC3339))
			}
			e.ObjEnd()
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	code := http.StatusOK
	if st == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}
