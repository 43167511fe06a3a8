package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	err := Wrap(context.Canceled, "waiting for pool")

	assert.True(t, IsAny(err, context.DeadlineExceeded, context.Canceled))
	assert.False(t, IsAny(err, context.DeadlineExceeded))
	assert.False(t, IsAny(nil, context.Canceled))
}

func TestWrapKeepsChain(t *testing.T) {
	base := New("boom")
	err := Wrapf(base, "query %d", 1)

	assert.True(t, Is(err, base))
	assert.Equal(t, "query 1: boom", err.Error())
}
