package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanafos/bid-rules-core/internal/domain/errors"
)

// TestContext creates a context with timeout for tests
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// FixedClock returns a clock function that always reports now
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// RequireAppError asserts err is an AppError of the given type and code
func RequireAppError(t *testing.T, err error, errorType errors.ErrorType, code string) *errors.AppError {
	t.Helper()
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected *errors.AppError, got %T", err)
	assert.Equal(t, errorType, appErr.Type, "error type")
	assert.Equal(t, code, appErr.Code, "error code")
	return appErr
}
