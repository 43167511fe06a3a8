package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError_MatchesPredefined(t *testing.T) {
	err := NewNotFoundError("Not Found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, errors.Wrap(err, "lookup"), ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Not Found", err.Message())
	assert.Equal(t, "Not Found", err.Details())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInfrastructureError(cause, "failed to find user by id")

	assert.Equal(t, "failed to find user by id: connection refused", err.Error())
	assert.Equal(t, err.Error(), err.Details())
	assert.Equal(t, "INFRASTRUCTURE_FAILURE", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInfrastructure, KindOf(errors.WithStack(err)))

	bare := NewInfrastructureError(nil, "pool closed")
	assert.Equal(t, "pool closed", bare.Error())
}

func TestInfrastructure(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Infrastructure(nil, "ignored"))
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		err := Infrastructure(errors.Wrap(context.Canceled, "acquire"), "ignored")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, KindUnknown, KindOf(err))
	})

	t.Run("deadline is an infrastructure failure", func(t *testing.T) {
		err := NewAcquireError(context.DeadlineExceeded)

		assert.Equal(t, KindInfrastructure, KindOf(err))
		assert.Equal(t, "Failed to acquire connection: context deadline exceeded", err.Error())
	})

	t.Run("already classified errors are not double wrapped", func(t *testing.T) {
		inner := NewInfrastructureError(errors.New("boom"), "query")
		err := Infrastructure(inner, "outer")

		assert.Same(t, inner, err)
	})
}

func TestKindOf_Unknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "infrastructure", KindInfrastructure.String())
	assert.Equal(t, "not_found", KindNotFound.String())
}
