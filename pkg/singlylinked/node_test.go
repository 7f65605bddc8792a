package singlylinked

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkedkit/linkedkit/pkg/chainerr"
)

func chain(t *testing.T, values ...int) *Node[int] {
	t.Helper()
	var head *Node[int]
	for _, v := range values {
		require.NoError(t, InsertAtTail(&head, v))
	}
	return head
}

func TestNodeInsert(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		head := NewNode(4)
		require.Equal(t, []int{4}, Traverse(head))
		require.Nil(t, head.Next())
	})

	t.Run("head_and_tail", func(t *testing.T) {
		var head *Node[int]
		require.NoError(t, InsertAtHead(&head, 2))
		require.NoError(t, InsertAtHead(&head, 1))
		require.NoError(t, InsertAtTail(&head, 3))
		require.Equal(t, []int{1, 2, 3}, Traverse(head))
		require.Equal(t, 3, Size(head))
	})

	for _, tc := range []struct {
		name     string
		pos      int
		expected []int
	}{
		{name: "front", pos: 0, expected: []int{9, 1, 2, 3}},
		{name: "middle", pos: 2, expected: []int{1, 2, 9, 3}},
		{name: "end", pos: 3, expected: []int{1, 2, 3, 9}},
	} {
		t.Run("at_"+tc.name, func(t *testing.T) {
			head := chain(t, 1, 2, 3)
			require.NoError(t, InsertAt(&head, tc.pos, 9))
			require.Equal(t, tc.expected, Traverse(head))
		})
	}

	t.Run("at_out_of_range", func(t *testing.T) {
		head := chain(t, 1, 2, 3)
		require.ErrorIs(t, InsertAt(&head, 4, 9), chainerr.ErrOutOfRange)
		require.ErrorIs(t, InsertAt(&head, -1, 9), chainerr.ErrOutOfRange)
		require.Equal(t, []int{1, 2, 3}, Traverse(head))

		var empty *Node[int]
		require.ErrorIs(t, InsertAt(&empty, 1, 9), chainerr.ErrOutOfRange)
		require.Nil(t, empty)
	})

	t.Run("after", func(t *testing.T) {
		head := chain(t, 1, 3)
		n := InsertAfter(head, 2)
		require.Equal(t, 2, n.Data)
		require.Equal(t, []int{1, 2, 3}, Traverse(head))
		require.Nil(t, InsertAfter[int](nil, 2))
	})
}

func TestNodeDelete(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var head *Node[int]
		_, err := DeleteFromHead(&head)
		require.ErrorIs(t, err, chainerr.ErrEmpty)
		_, err = DeleteFromTail(&head)
		require.ErrorIs(t, err, chainerr.ErrEmpty)
		_, err = DeleteAt(&head, 0)
		require.ErrorIs(t, err, chainerr.ErrEmpty)
		require.Nil(t, head)
	})

	t.Run("single_node_from_either_end", func(t *testing.T) {
		head := chain(t, 1)
		v, err := DeleteFromHead(&head)
		require.NoError(t, err)
		require.Equal(t, 1, v)
		require.Nil(t, head)

		head = chain(t, 1)
		v, err = DeleteFromTail(&head)
		require.NoError(t, err)
		require.Equal(t, 1, v)
		require.Nil(t, head)
	})

	t.Run("tail", func(t *testing.T) {
		head := chain(t, 1, 2, 3)
		v, err := DeleteFromTail(&head)
		require.NoError(t, err)
		require.Equal(t, 3, v)
		require.Equal(t, []int{1, 2}, Traverse(head))
	})

	for _, tc := range []struct {
		name     string
		pos      int
		value    int
		expected []int
	}{
		{name: "first", pos: 0, value: 1, expected: []int{2, 3}},
		{name: "middle", pos: 1, value: 2, expected: []int{1, 3}},
		{name: "last", pos: 2, value: 3, expected: []int{1, 2}},
	} {
		t.Run("at_"+tc.name, func(t *testing.T) {
			head := chain(t, 1, 2, 3)
			v, err := DeleteAt(&head, tc.pos)
			require.NoError(t, err)
			require.Equal(t, tc.value, v)
			require.Equal(t, tc.expected, Traverse(head))
		})
	}

	t.Run("at_out_of_range", func(t *testing.T) {
		head := chain(t, 1, 2, 3)
		for _, pos := range []int{-1, 3} {
			_, err := DeleteAt(&head, pos)
			require.ErrorIs(t, err, chainerr.ErrOutOfRange)
		}
		require.Equal(t, []int{1, 2, 3}, Traverse(head))
	})

	t.Run("after", func(t *testing.T) {
		head := chain(t, 1, 2)
		v, err := RemoveAfter(head)
		require.NoError(t, err)
		require.Equal(t, 2, v)

		_, err = RemoveAfter(head)
		require.ErrorIs(t, err, chainerr.ErrEmpty)
		_, err = RemoveAfter[int](nil)
		require.ErrorIs(t, err, chainerr.ErrNilHandle)
	})

	t.Run("all", func(t *testing.T) {
		head := chain(t, 1, 2, 3)
		require.Equal(t, 3, DeleteAll(&head))
		require.Nil(t, head)
		require.Zero(t, DeleteAll(&head))
		require.Zero(t, DeleteAll[int](nil))
	})
}

func TestNodeReverse(t *testing.T) {
	var head *Node[int]
	require.ErrorIs(t, Reverse(&head), chainerr.ErrEmpty)

	head = chain(t, 1, 2, 3)
	require.NoError(t, Reverse(&head))
	require.Equal(t, []int{3, 2, 1}, Traverse(head))
	require.NoError(t, Reverse(&head))
	require.Equal(t, []int{1, 2, 3}, Traverse(head))
}

func TestNodeNilHandle(t *testing.T) {
	require.ErrorIs(t, InsertAtHead(nil, 1), chainerr.ErrNilHandle)
	require.ErrorIs(t, InsertAtTail(nil, 1), chainerr.ErrNilHandle)
	require.ErrorIs(t, InsertAt(nil, 0, 1), chainerr.ErrNilHandle)
	require.ErrorIs(t, Reverse[int](nil), chainerr.ErrNilHandle)

	_, err := DeleteFromHead[int](nil)
	require.ErrorIs(t, err, chainerr.ErrNilHandle)
	_, err = DeleteFromTail[int](nil)
	require.ErrorIs(t, err, chainerr.ErrNilHandle)
	_, err = DeleteAt[int](nil, 0)
	require.ErrorIs(t, err, chainerr.ErrNilHandle)
}

func TestNodeDiagnostics(t *testing.T) {
	require.Equal(t, []string{"<empty>"}, Dump[int](nil))

	head := chain(t, 5, 6)
	require.Equal(t, []string{
		"#0 data = 5 | next = #1",
		"#1 data = 6 | next = nil",
	}, Dump(head))
	require.Equal(t, 2*Bytes(NewNode(0)), Bytes(head))
	require.Zero(t, Bytes[int](nil))

	var seen []int
	for i, v := range All(head) {
		require.Equal(t, len(seen), i)
		seen = append(seen, v)
	}
	require.Equal(t, []int{5, 6}, seen)
}
