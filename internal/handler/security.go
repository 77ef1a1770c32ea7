package handler

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/auth"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// RoleAdmin is the role claim that grants administrator access.
const RoleAdmin = "admin"

// Claims is the bearer token payload. The user id is read from user_id and
// falls back to the registered subject.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// SecurityHandler implements ogen's SecurityHandler interface, authenticating
// requests with HS256 bearer tokens.
type SecurityHandler struct {
	secret []byte
	issuer string
}

// NewSecurityHandler creates a SecurityHandler that verifies tokens signed
// with secret. A non-empty issuer must match the iss claim.
func NewSecurityHandler(secret []byte, issuer string) *SecurityHandler {
	return &SecurityHandler{secret: secret, issuer: issuer}
}

// HandleBearerAuth resolves the caller of every operation. The principal
// and its user id are added to the context for the handlers and the logs.
func (s *SecurityHandler) HandleBearerAuth(ctx context.Context, _ oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	p, err := s.Authenticate(strings.TrimSpace(t.Token))
	if err != nil {
		zctx.From(ctx).Debug("Rejected bearer token", zap.Error(err))
		return ctx, auth.ErrUnauthenticated
	}
	ctx = auth.WithPrincipal(ctx, p)
	return zctx.With(ctx, zap.String("user_id", p.UserID)), nil
}

// Authenticate parses and verifies a token and returns its principal.
func (s *SecurityHandler) Authenticate(token string) (auth.Principal, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return auth.Principal{}, errors.Wrap(err, "parse token")
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return auth.Principal{}, errors.New("token has no subject")
	}
	return auth.Principal{UserID: userID, Admin: claims.Role == RoleAdmin}, nil
}

// Issue signs a token for the principal valid for ttl.
func (s *SecurityHandler) Issue(p auth.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: p.UserID,
	}
	if p.Admin {
		claims.Role = RoleAdmin
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}
