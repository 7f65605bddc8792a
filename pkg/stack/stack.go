// Package stack provides LIFO stacks built on the head of a singly linked chain.
//
// Stack borrows its payloads: releasing it with Free drops the nodes and leaves the
// payloads to the caller. Owning holds payloads it is responsible for: Destroy
// closes every payload still on it. Which one to use is decided by the payload
// type, not at release time.
package stack

import (
	"errors"
	"io"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
	"github.com/linkedkit/linkedkit/pkg/singlylinked"
)

// Stack is a LIFO stack of payloads owned by the caller. The zero value is an
// empty stack.
type Stack[T any] struct {
	top    *singlylinked.Node[T]
	length int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(payload T) error {
	if s == nil {
		return chainerr.ErrNilHandle
	}
	if err := singlylinked.InsertAtHead(&s.top, payload); err != nil {
		return err
	}
	s.length++
	return nil
}

// Pop removes the top payload and returns it.
func (s *Stack[T]) Pop() (T, error) {
	if s == nil {
		var zero T
		return zero, chainerr.ErrNilHandle
	}

	payload, err := singlylinked.DeleteFromHead(&s.top)
	if err != nil {
		return payload, err
	}
	s.length--
	return payload, nil
}

// Peek returns the top payload without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s == nil {
		return zero, chainerr.ErrNilHandle
	}
	if s.top == nil {
		return zero, chainerr.ErrEmpty
	}
	return s.top.Data, nil
}

// IsEmpty reports whether s has no payloads. A nil stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return s == nil || s.top == nil
}

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Free pops every node, leaving the payloads untouched, and sets *s to nil. It
// returns the number of nodes released.
func Free[T any](s **Stack[T]) (int, error) {
	if s == nil || *s == nil {
		return 0, chainerr.ErrNilHandle
	}

	released := 0
	for !(*s).IsEmpty() {
		if _, err := (*s).Pop(); err != nil {
			return released, err
		}
		released++
	}
	*s = nil
	return released, nil
}

// Owning is a LIFO stack that owns its payloads until they are popped. A payload
// returned by Pop belongs to the caller again.
type Owning[T io.Closer] struct {
	inner Stack[T]
}

func NewOwning[T io.Closer]() *Owning[T] {
	return &Owning[T]{}
}

func (s *Owning[T]) Push(payload T) error {
	if s == nil {
		return chainerr.ErrNilHandle
	}
	return s.inner.Push(payload)
}

func (s *Owning[T]) Pop() (T, error) {
	if s == nil {
		var zero T
		return zero, chainerr.ErrNilHandle
	}
	return s.inner.Pop()
}

func (s *Owning[T]) Peek() (T, error) {
	if s == nil {
		var zero T
		return zero, chainerr.ErrNilHandle
	}
	return s.inner.Peek()
}

func (s *Owning[T]) IsEmpty() bool {
	return s == nil || s.inner.IsEmpty()
}

func (s *Owning[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.inner.Len()
}

// Destroy pops every payload and closes it, then sets *s to nil. Nil payloads are
// dropped without a call. Every payload is closed even if some fail; the failures
// are joined in the returned error.
func Destroy[T io.Closer](s **Owning[T]) error {
	if s == nil || *s == nil {
		return chainerr.ErrNilHandle
	}

	var errs []error
	for !(*s).IsEmpty() {
		payload, err := (*s).Pop()
		if err != nil {
			return errors.Join(append(errs, err)...)
		}
		// a nil payload holds nothing to close
		if any(payload) == nil {
			continue
		}
		if err := payload.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	*s = nil
	return errors.Join(errs...)
}
