package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_CanAccess(t *testing.T) {
	assert.True(t, Principal{UserID: "u1"}.CanAccess("u1"))
	assert.False(t, Principal{UserID: "u1"}.CanAccess("u2"))
	assert.False(t, Principal{}.CanAccess(""))
	assert.True(t, Principal{UserID: "admin", Admin: true}.CanAccess("u2"))
}

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{UserID: "u1", Admin: true})
	p, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", p.UserID)
	assert.True(t, p.Admin)
}
