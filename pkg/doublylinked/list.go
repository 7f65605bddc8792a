// Package doublylinked implements a doubly linked list of caller-owned payloads with
// positional insert and delete and in-place reversal.
//
// Nodes live in an arena owned by the list and refer to each other by slot index
// rather than by pointer. A removed node's slot drops its payload and goes onto a
// free list that later inserts reuse. The list keeps only its head: like the
// positional operations, Size and InsertAtTail walk the chain.
//
// A List is not safe for concurrent use.
package doublylinked

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"unsafe"

	"go.uber.org/zap"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
	"github.com/linkedkit/linkedkit/pkg/logger"
)

// link addresses a slot in the arena. Slot i is stored at nodes[i-1] so that the
// zero link means "no node" and the zero List is a valid empty list.
type link int32

const none link = 0

// maxSlots is the largest arena a link can address.
const maxSlots = math.MaxInt32

type node[T any] struct {
	prev link
	next link
	data T
}

// List is a doubly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	nodes []node[T]
	head  link
	// free is the first recycled slot; recycled slots are chained through next.
	free link

	maxNodes int
	logger   logger.Logger
}

// New returns an empty list.
func New[T any](opts ...Option) *List[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	return &List[T]{
		maxNodes: s.maxNodes,
		logger:   s.logger,
	}
}

// Create returns a list holding a single node with payload.
func Create[T any](payload T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	if err := l.InsertAtHead(payload); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) at(n link) *node[T] {
	return &l.nodes[n-1]
}

// alloc takes a slot for payload, reusing a recycled one when available. The
// returned slot is unlinked.
func (l *List[T]) alloc(payload T) (link, error) {
	if l.free != none {
		n := l.free
		nd := l.at(n)
		l.free = nd.next
		*nd = node[T]{data: payload}
		return n, nil
	}

	// without recycled slots every slot in the arena is live
	if limit := l.limit(); len(l.nodes) >= limit {
		return none, chainerr.CapacityExceededError(limit)
	}

	l.nodes = append(l.nodes, node[T]{data: payload})
	return link(len(l.nodes)), nil
}

// release recycles the slot of an already unlinked node and hands back its payload.
func (l *List[T]) release(n link) T {
	nd := l.at(n)
	data := nd.data
	*nd = node[T]{next: l.free}
	l.free = n
	return data
}

// unlink splices n out from between its neighbours and releases it.
func (l *List[T]) unlink(n link) T {
	nd := l.at(n)
	if nd.prev == none {
		l.head = nd.next
	} else {
		l.at(nd.prev).next = nd.next
	}
	if nd.next != none {
		l.at(nd.next).prev = nd.prev
	}
	return l.release(n)
}

// walk returns the node pos steps from the head. pos must be within the list.
func (l *List[T]) walk(pos int) link {
	n := l.head
	for ; pos > 0; pos-- {
		n = l.at(n).next
	}
	return n
}

func (l *List[T]) tail() link {
	n := l.head
	for l.at(n).next != none {
		n = l.at(n).next
	}
	return n
}

// limit is the most live nodes the list may hold: the configured cap, or the
// arena's addressable range when uncapped.
func (l *List[T]) limit() int {
	if l.maxNodes <= 0 || l.maxNodes > maxSlots {
		return maxSlots
	}
	return l.maxNodes
}

func (l *List[T]) reject(op string, err error, fields ...zap.Field) error {
	if l.logger != nil {
		fields = append([]zap.Field{zap.String("op", op), zap.Error(err), zap.Int("size", l.Size())}, fields...)
		if errors.Is(err, chainerr.ErrCapacityExceeded) {
			fields = append(fields, zap.Int("limit", l.limit()))
		}
		l.logger.Debug("doubly linked list operation rejected", fields...)
	}
	return err
}

// InsertAtHead links a new node holding payload in front of the current head.
func (l *List[T]) InsertAtHead(payload T) error {
	if l == nil {
		return chainerr.ErrNilHandle
	}

	n, err := l.alloc(payload)
	if err != nil {
		return l.reject("insert_at_head", err)
	}

	l.at(n).next = l.head
	if l.head != none {
		l.at(l.head).prev = n
	}
	l.head = n
	return nil
}

// InsertAtTail links a new node holding payload after the last node.
func (l *List[T]) InsertAtTail(payload T) error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if l.head == none {
		return l.InsertAtHead(payload)
	}

	n, err := l.alloc(payload)
	if err != nil {
		return l.reject("insert_at_tail", err)
	}

	t := l.tail()
	l.at(t).next = n
	l.at(n).prev = t
	return nil
}

// InsertAt links a new node so that it ends up at pos. Valid positions are 0
// through Size() inclusive; inserting at Size() appends.
func (l *List[T]) InsertAt(pos int, payload T) error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if pos < 0 {
		return l.reject("insert_at", chainerr.OutOfRangeError("insert_at", pos, l.Size()), zap.Int("position", pos))
	}
	if pos == 0 {
		return l.InsertAtHead(payload)
	}

	size := l.Size()
	if pos > size {
		return l.reject("insert_at", chainerr.OutOfRangeError("insert_at", pos, size), zap.Int("position", pos))
	}

	n, err := l.alloc(payload)
	if err != nil {
		return l.reject("insert_at", err, zap.Int("position", pos))
	}

	prev := l.walk(pos - 1)
	next := l.at(prev).next

	nd := l.at(n)
	nd.prev = prev
	nd.next = next
	l.at(prev).next = n
	if next != none {
		l.at(next).prev = n
	}
	return nil
}

// DeleteFromHead unlinks the first node and returns its payload. Deleting the only
// node leaves the list empty.
func (l *List[T]) DeleteFromHead() (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.head == none {
		return zero, l.reject("delete_from_head", chainerr.ErrEmpty)
	}
	return l.unlink(l.head), nil
}

// DeleteFromTail unlinks the last node and returns its payload.
func (l *List[T]) DeleteFromTail() (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.head == none {
		return zero, l.reject("delete_from_tail", chainerr.ErrEmpty)
	}
	return l.unlink(l.tail()), nil
}

// DeleteAt unlinks the node at pos and returns its payload. Valid positions are 0
// through Size()-1.
func (l *List[T]) DeleteAt(pos int) (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.head == none {
		return zero, l.reject("delete_at", chainerr.ErrEmpty, zap.Int("position", pos))
	}

	size := l.Size()
	if pos < 0 || pos >= size {
		return zero, l.reject("delete_at", chainerr.OutOfRangeError("delete_at", pos, size), zap.Int("position", pos))
	}
	return l.unlink(l.walk(pos)), nil
}

// Reverse flips the direction of every link in a single pass so the former tail
// becomes the head.
func (l *List[T]) Reverse() error {
	if l == nil {
		return chainerr.ErrNilHandle
	}
	if l.head == none {
		return l.reject("reverse", chainerr.ErrEmpty)
	}

	n := l.head
	for {
		nd := l.at(n)
		nd.prev, nd.next = nd.next, nd.prev
		// the old next now sits in prev
		if nd.prev == none {
			l.head = n
			return nil
		}
		n = nd.prev
	}
}

// Get returns the payload at pos without modifying the list.
func (l *List[T]) Get(pos int) (T, error) {
	var zero T
	if l == nil {
		return zero, chainerr.ErrNilHandle
	}
	if l.head == none {
		return zero, l.reject("get", chainerr.ErrEmpty, zap.Int("position", pos))
	}

	size := l.Size()
	if pos < 0 || pos >= size {
		return zero, l.reject("get", chainerr.OutOfRangeError("get", pos, size), zap.Int("position", pos))
	}
	return l.at(l.walk(pos)).data, nil
}

// Size counts the nodes reachable from the head.
func (l *List[T]) Size() int {
	if l == nil {
		return 0
	}

	count := 0
	for n := l.head; n != none; n = l.at(n).next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l == nil || l.head == none
}

// Bytes reports the node storage in use by the list.
func (l *List[T]) Bytes() int {
	return l.Size() * int(unsafe.Sizeof(node[T]{}))
}

// Traverse returns the payloads in link order, head first.
func (l *List[T]) Traverse() []T {
	if l == nil {
		return nil
	}

	out := make([]T, 0)
	for n := l.head; n != none; n = l.at(n).next {
		out = append(out, l.at(n).data)
	}
	return out
}

// All yields position and payload from the head to the tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := 0
		for n := l.head; n != none; n = l.at(n).next {
			if !yield(i, l.at(n).data) {
				return
			}
			i++
		}
	}
}

// Backward yields position and payload from the tail to the head, following the
// prev links.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.IsEmpty() {
			return
		}
		i := l.Size() - 1
		for n := l.tail(); n != none; n = l.at(n).prev {
			if !yield(i, l.at(n).data) {
				return
			}
			i--
		}
	}
}

// Dump describes every node in link order, one line per node, naming the slots
// of its neighbours.
func (l *List[T]) Dump() []string {
	if l.IsEmpty() {
		return []string{"<empty>"}
	}

	lines := make([]string, 0)
	for n := l.head; n != none; n = l.at(n).next {
		nd := l.at(n)
		lines = append(lines, fmt.Sprintf("prev = %s | data = %v | next = %s", nd.prev, nd.data, nd.next))
	}
	return lines
}

// Clear drops every node and the storage behind them.
func (l *List[T]) Clear() {
	if l == nil {
		return
	}
	l.nodes = nil
	l.head = none
	l.free = none
}

func (n link) String() string {
	if n == none {
		return "nil"
	}
	return fmt.Sprintf("#%d", n-1)
}
