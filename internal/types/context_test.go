package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultUserID, GetUserID(ctx))

	ctx = context.WithValue(ctx, CtxUserID, "user_123")
	assert.Equal(t, "user_123", GetUserID(ctx))
}

func TestGetRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))

	ctx = context.WithValue(ctx, CtxRequestID, "req_abc")
	assert.Equal(t, "req_abc", GetRequestID(ctx))
}
