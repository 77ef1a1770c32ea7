// Package auth carries the caller identity through request contexts.
package auth

import (
	"context"

	"github.com/go-faster/errors"
)

var (
	// ErrUnauthenticated is returned when a request carries no valid identity.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the caller may not act on a resource.
	ErrForbidden = errors.New("access denied")
)

// Principal is the authenticated caller. Identity is issued elsewhere; the
// order core only needs the user id and the admin flag.
type Principal struct {
	UserID string
	Admin  bool
}

// CanAccess reports whether p may read or change a resource owned by ownerID.
func (p Principal) CanAccess(ownerID string) bool {
	return p.Admin || (p.UserID != "" && p.UserID == ownerID)
}

type principalKey struct{}

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
