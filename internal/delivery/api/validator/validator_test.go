package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	ID string `validate:"required,uuid"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&lookupRequest{ID: "11111111-1111-1111-1111-111111111111"}))

	err := v.Validate(&lookupRequest{ID: "not-a-uuid"})
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "ID", Rule: "uuid"}}, FieldErrors(err))

	err = v.Validate(&lookupRequest{})
	assert.Equal(t, []FieldError{{Field: "ID", Rule: "required"}}, FieldErrors(err))
}

func TestFieldErrors_OtherError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
