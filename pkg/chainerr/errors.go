// Package chainerr holds the errors shared by every linked container in this module.
package chainerr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty if a delete, pop, peek or reverse is attempted on a structure with no nodes.
	ErrEmpty = errors.New("structure is empty")

	// ErrOutOfRange if a position is negative, greater than the size on insert, or
	// greater than or equal to the size on delete.
	ErrOutOfRange = errors.New("position out of range")

	// ErrCapacityExceeded if an insert would grow a container past its node limit.
	ErrCapacityExceeded = errors.New("node limit exceeded")

	// ErrNilHandle if an operation is given an absent container handle.
	ErrNilHandle = errors.New("nil container handle")
)

// OutOfRangeError reports which operation rejected pos and the size it was checked against.
func OutOfRangeError(op string, pos, size int) error {
	return fmt.Errorf("%s: position %d with size %d: %w", op, pos, size, ErrOutOfRange)
}

func CapacityExceededError(limit int) error {
	return fmt.Errorf("cannot allocate beyond %d nodes: %w", limit, ErrCapacityExceeded)
}
