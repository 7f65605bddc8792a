// Package queue provides a FIFO queue over a singly linked chain with front and
// rear references, so both ends are reached in constant time.
package queue

import (
	"github.com/linkedkit/linkedkit/pkg/chainerr"
	"github.com/linkedkit/linkedkit/pkg/singlylinked"
)

// Queue is a FIFO queue of caller-owned payloads. The zero value is an empty queue.
// A Queue is not safe for concurrent use.
type Queue[T any] struct {
	front  *singlylinked.Node[T]
	rear   *singlylinked.Node[T]
	length int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends payload at the rear.
func (q *Queue[T]) Enqueue(payload T) error {
	if q == nil {
		return chainerr.ErrNilHandle
	}

	if q.rear == nil {
		q.front = singlylinked.NewNode(payload)
		q.rear = q.front
	} else {
		q.rear = singlylinked.InsertAfter(q.rear, payload)
	}
	q.length++
	return nil
}

// Dequeue removes the payload at the front and returns it.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q == nil {
		return zero, chainerr.ErrNilHandle
	}

	payload, err := singlylinked.DeleteFromHead(&q.front)
	if err != nil {
		return zero, err
	}
	if q.front == nil {
		q.rear = nil
	}
	q.length--
	return payload, nil
}

// Peek returns the payload at the front without removing it.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q == nil {
		return zero, chainerr.ErrNilHandle
	}
	if q.front == nil {
		return zero, chainerr.ErrEmpty
	}
	return q.front.Data, nil
}

func (q *Queue[T]) IsEmpty() bool {
	return q == nil || q.front == nil
}

func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.length
}

// Values returns the queued payloads, front first.
func (q *Queue[T]) Values() []T {
	if q == nil {
		return nil
	}
	return singlylinked.Traverse(q.front)
}

// Clear drops every queued payload.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	singlylinked.DeleteAll(&q.front)
	q.rear = nil
	q.length = 0
}
