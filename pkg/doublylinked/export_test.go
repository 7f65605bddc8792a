package doublylinked

import "fmt"

// checkLinks verifies the paired links, the head and tail boundaries, and that the
// live and recycled slots together account for the whole arena.
func (l *List[T]) checkLinks() error {
	live := 0
	prev := none
	for n := l.head; n != none; n = l.at(n).next {
		if live > len(l.nodes) {
			return fmt.Errorf("cycle detected after %d nodes", live)
		}
		if got := l.at(n).prev; got != prev {
			return fmt.Errorf("node %s has prev %s, want %s", n, got, prev)
		}
		prev = n
		live++
	}

	recycled := 0
	for n := l.free; n != none; n = l.at(n).next {
		if recycled > len(l.nodes) {
			return fmt.Errorf("cycle detected in free list")
		}
		recycled++
	}

	if live+recycled != len(l.nodes) {
		return fmt.Errorf("%d live and %d recycled slots in an arena of %d", live, recycled, len(l.nodes))
	}
	return nil
}

func (l *List[T]) arenaLen() int {
	return len(l.nodes)
}
