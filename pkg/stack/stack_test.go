package stack

import (
	"errors"
	"io"
	"testing"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/stretchr/testify/require"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
)

func TestStack(t *testing.T) {
	t.Run("lifo_order", func(t *testing.T) {
		s := New[int]()
		require.True(t, s.IsEmpty())

		require.NoError(t, s.Push(1))
		require.NoError(t, s.Push(2))
		require.NoError(t, s.Push(3))
		require.False(t, s.IsEmpty())
		require.Equal(t, 3, s.Len())

		for _, expected := range []int{3, 2, 1} {
			v, err := s.Pop()
			require.NoError(t, err)
			require.Equal(t, expected, v)
		}

		_, err := s.Pop()
		require.ErrorIs(t, err, chainerr.ErrEmpty)
		require.True(t, s.IsEmpty())
		require.Zero(t, s.Len())
	})

	t.Run("peek_does_not_mutate", func(t *testing.T) {
		s := New[string]()
		_, err := s.Peek()
		require.ErrorIs(t, err, chainerr.ErrEmpty)

		require.NoError(t, s.Push("a"))
		require.NoError(t, s.Push("b"))
		for range 3 {
			v, err := s.Peek()
			require.NoError(t, err)
			require.Equal(t, "b", v)
			require.Equal(t, 2, s.Len())
		}
	})

	t.Run("payloads_are_borrowed", func(t *testing.T) {
		x := 5
		s := New[*int]()
		require.NoError(t, s.Push(&x))

		released, err := Free(&s)
		require.NoError(t, err)
		require.Equal(t, 1, released)
		require.Nil(t, s)
		require.Equal(t, 5, x)
	})

	t.Run("nil_stack", func(t *testing.T) {
		var s *Stack[int]
		require.ErrorIs(t, s.Push(1), chainerr.ErrNilHandle)
		_, err := s.Pop()
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
		_, err = s.Peek()
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
		require.True(t, s.IsEmpty())
		require.Zero(t, s.Len())

		_, err = Free(&s)
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
		_, err = Free[int](nil)
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
	})

	t.Run("matches_reference", func(t *testing.T) {
		s := New[int]()
		ref := linkedliststack.New()
		for i := range 100 {
			if i%3 == 2 {
				got, err := s.Pop()
				expected, ok := ref.Pop()
				require.True(t, ok)
				require.NoError(t, err)
				require.Equal(t, expected, got)
				continue
			}
			require.NoError(t, s.Push(i))
			ref.Push(i)
		}
		require.Equal(t, ref.Size(), s.Len())
	})
}

type resource struct {
	name   string
	closed int
	err    error
}

func (r *resource) Close() error {
	r.closed++
	return r.err
}

func TestOwning(t *testing.T) {
	t.Run("destroy_closes_each_payload_once", func(t *testing.T) {
		a, b, c := &resource{name: "a"}, &resource{name: "b"}, &resource{name: "c"}
		s := NewOwning[*resource]()
		require.NoError(t, s.Push(a))
		require.NoError(t, s.Push(b))
		require.NoError(t, s.Push(c))

		top, err := s.Peek()
		require.NoError(t, err)
		require.Same(t, c, top)

		// a popped payload is the caller's again
		popped, err := s.Pop()
		require.NoError(t, err)
		require.Same(t, c, popped)

		require.NoError(t, Destroy(&s))
		require.Nil(t, s)
		require.Equal(t, 1, a.closed)
		require.Equal(t, 1, b.closed)
		require.Zero(t, c.closed)
	})

	t.Run("destroy_joins_close_errors", func(t *testing.T) {
		errA := errors.New("a failed")
		errB := errors.New("b failed")
		a, b, c := &resource{err: errA}, &resource{err: errB}, &resource{}

		s := NewOwning[*resource]()
		for _, r := range []*resource{a, b, c} {
			require.NoError(t, s.Push(r))
		}
		require.Equal(t, 3, s.Len())

		err := Destroy(&s)
		require.ErrorIs(t, err, errA)
		require.ErrorIs(t, err, errB)
		require.Nil(t, s)
		require.Equal(t, 1, c.closed)
	})

	t.Run("destroy_skips_nil_payload", func(t *testing.T) {
		below, above := &resource{name: "below"}, &resource{name: "above"}

		s := NewOwning[io.Closer]()
		require.NoError(t, s.Push(below))
		require.NoError(t, s.Push(nil))
		require.NoError(t, s.Push(above))
		require.Equal(t, 3, s.Len())

		require.NotPanics(t, func() {
			require.NoError(t, Destroy(&s))
		})
		require.Nil(t, s)
		require.Equal(t, 1, below.closed)
		require.Equal(t, 1, above.closed)
	})

	t.Run("nil_stack", func(t *testing.T) {
		var s *Owning[*resource]
		require.ErrorIs(t, s.Push(&resource{}), chainerr.ErrNilHandle)
		_, err := s.Pop()
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
		_, err = s.Peek()
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
		require.True(t, s.IsEmpty())
		require.Zero(t, s.Len())
		require.ErrorIs(t, Destroy(&s), chainerr.ErrNilHandle)
	})
}

func BenchmarkPushPop(b *testing.B) {
	s := New[int]()
	for i := 0; i < b.N; i++ {
		_ = s.Push(i)
		_, _ = s.Pop()
	}
}
