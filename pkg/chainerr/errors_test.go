package chainerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutOfRangeError(t *testing.T) {
	err := OutOfRangeError("insert", 5, 3)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.EqualError(t, err, "insert: position 5 with size 3: position out of range")
}

func TestCapacityExceededError(t *testing.T) {
	err := CapacityExceededError(2)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.False(t, errors.Is(err, ErrOutOfRange))
	require.EqualError(t, err, "cannot allocate beyond 2 nodes: node limit exceeded")
}
