package singlylinked

import (
	"errors"
	"iter"
	"unsafe"

	"go.uber.org/zap"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
	"github.com/linkedkit/linkedkit/pkg/logger"
)

// List is a singly linked list that tracks its own length. The zero value is an
// empty list ready to use.
type List[T any] struct {
	head *Node[T]
	// length is only changed by linkAfter, unlinkAfter and Clear.
	length int

	maxNodes int
	logger   logger.Logger
}

func NewList[T any](opts ...Option) *List[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	return &List[T]{
		maxNodes: s.maxNodes,
		logger:   s.logger,
	}
}

// linkAfter links a new node after prev, or at the head if prev is nil, and counts it.
func (l *List[T]) linkAfter(prev *Node[T], payload T) error {
	if l.maxNodes > 0 && l.length >= l.maxNodes {
		return chainerr.CapacityExceededError(l.maxNodes)
	}

	if prev == nil {
		l.head = &Node[T]{Data: payload, next: l.head}
	} else {
		InsertAfter(prev, payload)
	}
	l.length++
	return nil
}

// unlinkAfter unlinks the node after prev, or the head if prev is nil, and uncounts it.
// The node must exist.
func (l *List[T]) unlinkAfter(prev *Node[T]) T {
	var data T
	if prev == nil {
		data, _ = DeleteFromHead(&l.head)
	} else {
		data, _ = RemoveAfter(prev)
	}
	l.length--
	return data
}

// predecessor returns the node before pos, or nil for the head position.
func (l *List[T]) predecessor(pos int) *Node[T] {
	if pos == 0 {
		return nil
	}
	return nodeAt(l.head, pos-1)
}

func (l *List[T]) reject(op string, err error, fields ...zap.Field) error {
	if l.logger != nil {
		fields = append([]zap.Field{zap.String("op", op), zap.Error(err), zap.Int("size", l.length)}, fields...)
		if errors.Is(err, chainerr.ErrCapacityExceeded) {
			fields = append(fields, zap.Int("limit", l.maxNodes))
		}
		l.logger.Debug("singly linked list operation rejected", fields...)
	}
	return err
}

func (l *List[T]) InsertAtHead(payload T) error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if err := l.linkAfter(nil, payload); err != nil {
		return l.reject("insert_at_head", err)
	}
	return nil
}

func (l *List[T]) InsertAtTail(payload T) error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if err := l.linkAfter(last(l.head), payload); err != nil {
		return l.reject("insert_at_tail", err)
	}
	return nil
}

// InsertAt links a new node so that it ends up at pos, for pos in [0, Len].
func (l *List[T]) InsertAt(pos int, payload T) error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if pos < 0 || pos > l.length {
		return l.reject("insert_at", chainerr.OutOfRangeError("insert_at", pos, l.length), zap.Int("position", pos))
	}
	if err := l.linkAfter(l.predecessor(pos), payload); err != nil {
		return l.reject("insert_at", err, zap.Int("position", pos))
	}
	return nil
}

func (l *List[T]) DeleteFromHead() (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.length == 0 {
		return zero, l.reject("delete_from_head", chainerr.ErrEmpty)
	}
	return l.unlinkAfter(nil), nil
}

func (l *List[T]) DeleteFromTail() (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.length == 0 {
		return zero, l.reject("delete_from_tail", chainerr.ErrEmpty)
	}
	return l.unlinkAfter(l.predecessor(l.length - 1)), nil
}

// DeleteAt unlinks the node at pos, for pos in [0, Len), and returns its payload.
func (l *List[T]) DeleteAt(pos int) (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.length == 0 {
		return zero, l.reject("delete_at", chainerr.ErrEmpty, zap.Int("position", pos))
	}
	if pos < 0 || pos >= l.length {
		return zero, l.reject("delete_at", chainerr.OutOfRangeError("delete_at", pos, l.length), zap.Int("position", pos))
	}
	return l.unlinkAfter(l.predecessor(pos)), nil
}

func (l *List[T]) Reverse() error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if err := Reverse(&l.head); err != nil {
		return l.reject("reverse", err)
	}
	return nil
}

// Len returns the cached node count.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Head returns the first node, or nil if the list is empty. The chain must not be
// modified through it.
func (l *List[T]) Head() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List[T]) Traverse() []T {
	if l == nil {
		return nil
	}
	return Traverse(l.head)
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return All(l.Head())
}

func (l *List[T]) Dump() []string {
	return Dump(l.Head())
}

func (l *List[T]) Bytes() int {
	return l.Len() * int(unsafe.Sizeof(Node[T]{}))
}

// Clear unlinks every node.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	DeleteAll(&l.head)
	l.length = 0
}
