// Package singlylinked implements singly linked lists of caller-owned payloads.
//
// Two forms are provided. The bare form is a chain of *Node values addressed by its
// head; the package functions take a pointer to the head so they can replace it,
// and a nil head is an empty chain. List is the size-tracked form: it owns a chain
// and keeps its length in step with every structural change.
//
// Each node is referenced only by its predecessor, or by the head for the first
// node, so unlinking a node is enough to release it. Nothing here is safe for
// concurrent use.
package singlylinked

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
)

type Node[T any] struct {
	Data T
	next *Node[T]
}

// NewNode returns a one-node chain holding payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{Data: payload}
}

// Next returns the successor of n, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// InsertAfter links a new node holding payload directly after mark and returns it.
// It returns nil if mark is nil.
func InsertAfter[T any](mark *Node[T], payload T) *Node[T] {
	if mark == nil {
		return nil
	}
	mark.next = &Node[T]{Data: payload, next: mark.next}
	return mark.next
}

// RemoveAfter unlinks the successor of mark and returns its payload.
func RemoveAfter[T any](mark *Node[T]) (T, error) {
	var zero T
	if mark == nil {
		return zero, chainerr.ErrNilHandle
	}
	if mark.next == nil {
		return zero, chainerr.ErrEmpty
	}

	victim := mark.next
	mark.next = victim.next
	victim.next = nil
	return victim.Data, nil
}

// nodeAt returns the node pos steps from head. pos must be within the chain.
func nodeAt[T any](head *Node[T], pos int) *Node[T] {
	n := head
	for ; pos > 0; pos-- {
		n = n.next
	}
	return n
}

func last[T any](head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}
	n := head
	for n.next != nil {
		n = n.next
	}
	return n
}

func InsertAtHead[T any](head **Node[T], payload T) error {
	if head == nil {
		return chainerr.ErrNilHandle
	}
	*head = &Node[T]{Data: payload, next: *head}
	return nil
}

func InsertAtTail[T any](head **Node[T], payload T) error {
	if head == nil {
		return chainerr.ErrNilHandle
	}
	if *head == nil {
		return InsertAtHead(head, payload)
	}
	InsertAfter(last(*head), payload)
	return nil
}

// InsertAt links a new node so that it ends up at pos, for pos in [0, Size].
func InsertAt[T any](head **Node[T], pos int, payload T) error {
	if head == nil {
		return chainerr.ErrNilHandle
	}
	if pos == 0 {
		return InsertAtHead(head, payload)
	}

	size := Size(*head)
	if pos < 0 || pos > size {
		return chainerr.OutOfRangeError("insert_at", pos, size)
	}
	InsertAfter(nodeAt(*head, pos-1), payload)
	return nil
}

func DeleteFromHead[T any](head **Node[T]) (T, error) {
	var zero T
	if head == nil {
		return zero, chainerr.ErrNilHandle
	}
	if *head == nil {
		return zero, chainerr.ErrEmpty
	}

	victim := *head
	*head = victim.next
	victim.next = nil
	return victim.Data, nil
}

func DeleteFromTail[T any](head **Node[T]) (T, error) {
	var zero T
	if head == nil {
		return zero, chainerr.ErrNilHandle
	}
	if *head == nil {
		return zero, chainerr.ErrEmpty
	}
	if (*head).next == nil {
		return DeleteFromHead(head)
	}

	prev := *head
	for prev.next.next != nil {
		prev = prev.next
	}
	return RemoveAfter(prev)
}

// DeleteAt unlinks the node at pos, for pos in [0, Size), and returns its payload.
func DeleteAt[T any](head **Node[T], pos int) (T, error) {
	var zero T
	if head == nil {
		return zero, chainerr.ErrNilHandle
	}
	if *head == nil {
		return zero, chainerr.ErrEmpty
	}

	size := Size(*head)
	if pos < 0 || pos >= size {
		return zero, chainerr.OutOfRangeError("delete_at", pos, size)
	}
	if pos == 0 {
		return DeleteFromHead(head)
	}
	return RemoveAfter(nodeAt(*head, pos-1))
}

// Reverse points every node at its predecessor in one pass and makes the former
// tail the head.
func Reverse[T any](head **Node[T]) error {
	if head == nil {
		return chainerr.ErrNilHandle
	}
	if *head == nil {
		return chainerr.ErrEmpty
	}

	var prev *Node[T]
	for n := *head; n != nil; {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	*head = prev
	return nil
}

// DeleteAll unlinks every node, leaves the chain empty and returns how many nodes
// were released. Payloads are left alone.
func DeleteAll[T any](head **Node[T]) int {
	if head == nil {
		return 0
	}

	count := 0
	for *head != nil {
		victim := *head
		*head = victim.next
		victim.next = nil
		count++
	}
	return count
}

func Size[T any](head *Node[T]) int {
	count := 0
	for n := head; n != nil; n = n.next {
		count++
	}
	return count
}

// Bytes reports the node storage in use by the chain.
func Bytes[T any](head *Node[T]) int {
	return Size(head) * int(unsafe.Sizeof(Node[T]{}))
}

func Traverse[T any](head *Node[T]) []T {
	out := make([]T, 0)
	for n := head; n != nil; n = n.next {
		out = append(out, n.Data)
	}
	return out
}

// All yields position and payload in link order.
func All[T any](head *Node[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := head; n != nil; n = n.next {
			if !yield(i, n.Data) {
				return
			}
			i++
		}
	}
}

// Dump describes every node in link order, one line per node.
func Dump[T any](head *Node[T]) []string {
	if head == nil {
		return []string{"<empty>"}
	}

	lines := make([]string, 0)
	for i, n := 0, head; n != nil; i, n = i+1, n.next {
		next := "nil"
		if n.next != nil {
			next = fmt.Sprintf("#%d", i+1)
		}
		lines = append(lines, fmt.Sprintf("#%d data = %v | next = %s", i, n.Data, next))
	}
	return lines
}
