package soak

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/linkedliststack"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
	"github.com/linkedkit/linkedkit/pkg/doublylinked"
	"github.com/linkedkit/linkedkit/pkg/queue"
	"github.com/linkedkit/linkedkit/pkg/singlylinked"
	"github.com/linkedkit/linkedkit/pkg/stack"
)

// worker owns one instance of every container and drives them one after another.
type worker struct {
	id         int
	seed       int64
	operations int
	maxNodes   int
	metrics    *metrics

	rng       *rand.Rand
	structure Structure
	step      int
}

func (w *worker) run(ctx context.Context) error {
	w.rng = rand.New(rand.NewPCG(uint64(w.seed), uint64(w.id)))

	for _, s := range Structures {
		w.structure = s
		var err error
		switch s {
		case DoublyLinked:
			err = w.doublyLinked(ctx)
		case SinglyLinked:
			err = w.singlyLinked(ctx)
		case Stack:
			err = w.stack(ctx)
		case Queue:
			err = w.queue(ctx)
		}
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// steps yields the step numbers for one container, stopping early once ctx is done.
func (w *worker) steps(ctx context.Context) func(func(int) bool) {
	return func(yield func(int) bool) {
		for w.step = 0; w.step < w.operations; w.step++ {
			if w.step%cancellationCheckInterval == 0 && ctx.Err() != nil {
				return
			}
			if !yield(w.step) {
				return
			}
		}
	}
}

func (w *worker) diverged(format string, args ...any) error {
	w.metrics.divergences.WithLabelValues(string(w.structure)).Inc()
	return fmt.Errorf("%s worker %d step %d (seed %d): %s: %w",
		w.structure, w.id, w.step, w.seed, fmt.Sprintf(format, args...), ErrDivergence)
}

// observe counts the outcome of op and checks it is the outcome the reference predicts.
func (w *worker) observe(op string, want, got error) error {
	w.metrics.operations.WithLabelValues(string(w.structure), op, outcome(got)).Inc()

	if want == nil && got == nil {
		return nil
	}
	if want != nil && errors.Is(got, want) {
		return nil
	}
	return w.diverged("%s returned %v, want %v", op, got, want)
}

func (w *worker) sameValue(op string, got int, want interface{}) error {
	if want != got {
		return w.diverged("%s returned %d, want %v", op, got, want)
	}
	return nil
}

func (w *worker) sameContents(got []int, want []interface{}) error {
	if len(got) != len(want) {
		return w.diverged("holds %d payloads, want %d", len(got), len(want))
	}
	for i := range got {
		if want[i] != got[i] {
			return w.diverged("payload %d is %d, want %v", i, got[i], want[i])
		}
	}
	return nil
}

func (w *worker) insertErr(pos, size int) error {
	if pos < 0 || pos > size {
		return chainerr.ErrOutOfRange
	}
	if w.maxNodes > 0 && size >= w.maxNodes {
		return chainerr.ErrCapacityExceeded
	}
	return nil
}

func deleteErr(pos, size int) error {
	if size == 0 {
		return chainerr.ErrEmpty
	}
	if pos < 0 || pos >= size {
		return chainerr.ErrOutOfRange
	}
	return nil
}

// position picks a position around the valid range so rejections are exercised too.
func (w *worker) position(size int) int {
	return w.rng.IntN(size+3) - 1
}

func reverseReference(ref lists.List) {
	values := ref.Values()
	slices.Reverse(values)
	ref.Clear()
	ref.Add(values...)
}

// positional is the operation set shared by both list forms.
type positional interface {
	InsertAtHead(int) error
	InsertAtTail(int) error
	InsertAt(int, int) error
	DeleteFromHead() (int, error)
	DeleteFromTail() (int, error)
	DeleteAt(int) (int, error)
	Reverse() error
	Traverse() []int
}

func (w *worker) doublyLinked(ctx context.Context) error {
	l := doublylinked.New[int](doublylinked.WithMaxNodes(w.maxNodes))
	if err := w.listWorkload(ctx, l, doublylinkedlist.New()); err != nil {
		return err
	}

	if got := l.Size(); got != len(l.Traverse()) {
		return w.diverged("size %d disagrees with traversal", got)
	}
	return nil
}

func (w *worker) singlyLinked(ctx context.Context) error {
	l := singlylinked.NewList[int](singlylinked.WithMaxNodes(w.maxNodes))
	if err := w.listWorkload(ctx, l, singlylinkedlist.New()); err != nil {
		return err
	}

	if got := singlylinked.Size(l.Head()); got != l.Len() {
		return w.diverged("cached length %d, chain holds %d", l.Len(), got)
	}
	return nil
}

func (w *worker) listWorkload(ctx context.Context, l positional, ref lists.List) error {
	for range w.steps(ctx) {
		size := ref.Size()
		v := w.rng.IntN(1_000_000)
		pos := w.position(size)

		var err error
		switch w.rng.IntN(7) {
		case 0:
			want := w.insertErr(0, size)
			if err = w.observe("insert_at_head", want, l.InsertAtHead(v)); err == nil && want == nil {
				ref.Insert(0, v)
			}
		case 1:
			want := w.insertErr(size, size)
			if err = w.observe("insert_at_tail", want, l.InsertAtTail(v)); err == nil && want == nil {
				ref.Add(v)
			}
		case 2:
			want := w.insertErr(pos, size)
			if err = w.observe("insert_at", want, l.InsertAt(pos, v)); err == nil && want == nil {
				ref.Insert(pos, v)
			}
		case 3:
			err = w.deleteStep("delete_from_head", 0, size, ref, l.DeleteFromHead)
		case 4:
			err = w.deleteStep("delete_from_tail", size-1, size, ref, l.DeleteFromTail)
		case 5:
			err = w.deleteStep("delete_at", pos, size, ref, func() (int, error) { return l.DeleteAt(pos) })
		case 6:
			want := error(nil)
			if size == 0 {
				want = chainerr.ErrEmpty
			}
			if err = w.observe("reverse", want, l.Reverse()); err == nil && want == nil {
				reverseReference(ref)
			}
		}
		if err != nil {
			return err
		}

		if err := w.sameContents(l.Traverse(), ref.Values()); err != nil {
			return err
		}
	}
	return nil
}

func (w *worker) deleteStep(op string, pos, size int, ref lists.List, del func() (int, error)) error {
	want := deleteErr(pos, size)
	got, err := del()
	if err := w.observe(op, want, err); err != nil {
		return err
	}
	if want != nil {
		return nil
	}

	expected, _ := ref.Get(pos)
	ref.Remove(pos)
	return w.sameValue(op, got, expected)
}

func (w *worker) stack(ctx context.Context) error {
	s := stack.New[int]()
	ref := linkedliststack.New()

	for range w.steps(ctx) {
		want := error(nil)
		if ref.Empty() {
			want = chainerr.ErrEmpty
		}

		switch w.rng.IntN(3) {
		case 0:
			v := w.rng.IntN(1_000_000)
			if err := w.observe("push", nil, s.Push(v)); err != nil {
				return err
			}
			ref.Push(v)
		case 1:
			got, err := s.Pop()
			if err := w.observe("pop", want, err); err != nil {
				return err
			}
			if expected, ok := ref.Pop(); ok {
				if err := w.sameValue("pop", got, expected); err != nil {
					return err
				}
			}
		case 2:
			got, err := s.Peek()
			if err := w.observe("peek", want, err); err != nil {
				return err
			}
			if expected, ok := ref.Peek(); ok {
				if err := w.sameValue("peek", got, expected); err != nil {
					return err
				}
			}
		}

		if s.Len() != ref.Size() || s.IsEmpty() != ref.Empty() {
			return w.diverged("holds %d payloads, want %d", s.Len(), ref.Size())
		}
	}

	if _, err := stack.Free(&s); err != nil {
		return w.diverged("free failed: %v", err)
	}
	return nil
}

func (w *worker) queue(ctx context.Context) error {
	q := queue.New[int]()
	ref := linkedlistqueue.New()

	for range w.steps(ctx) {
		want := error(nil)
		if ref.Empty() {
			want = chainerr.ErrEmpty
		}

		switch w.rng.IntN(3) {
		case 0:
			v := w.rng.IntN(1_000_000)
			if err := w.observe("enqueue", nil, q.Enqueue(v)); err != nil {
				return err
			}
			ref.Enqueue(v)
		case 1:
			got, err := q.Dequeue()
			if err := w.observe("dequeue", want, err); err != nil {
				return err
			}
			if expected, ok := ref.Dequeue(); ok {
				if err := w.sameValue("dequeue", got, expected); err != nil {
					return err
				}
			}
		case 2:
			got, err := q.Peek()
			if err := w.observe("peek", want, err); err != nil {
				return err
			}
			if expected, ok := ref.Peek(); ok {
				if err := w.sameValue("peek", got, expected); err != nil {
					return err
				}
			}
		}

		if err := w.sameContents(q.Values(), ref.Values()); err != nil {
			return err
		}
	}
	return nil
}
