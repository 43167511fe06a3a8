package usecase

import (
	"encoding/json"
	"testing"

	"userlookup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOutput(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	user := &entity.User{ID: id, Name: "Alice"}

	output := NewGetUserOutput(user)

	assert.Equal(t, &GetUserOutput{ID: id, Name: "Alice"}, output)

	user.Name = "Mallory"
	assert.Equal(t, "Alice", output.Name, "output must not alias the entity")

	body, err := json.Marshal(output)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"11111111-1111-1111-1111-111111111111","name":"Alice"}`, string(body))
}
