package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUsernameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "john")

	username, ok := GetUsernameFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "john", username)
}

func TestGetCompanyIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), CompanyIDCtxKey, int64(7))

	companyID, ok := GetCompanyIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), companyID)

	_, ok = GetCompanyIDFromContext(context.Background())
	assert.False(t, ok)
}
