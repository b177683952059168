package avl

import "iter"

// Cursor walks a tree's sequence in order by following successor threading,
// O(1) per step and without recursion or an auxiliary stack.
//
// A cursor snapshots the tree's modification counter at creation. Advancing
// a cursor after any structural mutation of the tree fails with
// ErrConcurrentModification; continuing to walk possibly stale threading is
// never silently tolerated. Cursors do not support removal.
type Cursor[T any] struct {
	tree        *Tree[T]
	next        *Node[T]
	expectedMod uint64
}

// NewCursor creates a cursor positioned before the tree minimum.
func (t *Tree[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{
		tree:        t,
		next:        t.Min(),
		expectedMod: t.modCount,
	}
}

// Next returns the next node in sequence order, or nil after the maximum has
// been returned. It fails with ErrConcurrentModification if the tree was
// structurally mutated since the cursor was created.
func (c *Cursor[T]) Next() (*Node[T], error) {
	if c.expectedMod != c.tree.modCount {
		return nil, ErrConcurrentModification
	}
	node := c.next
	if node != nil {
		c.next = node.successor
	}
	return node, nil
}

// Nodes returns an in-order iterator over the tree's nodes.
//
// The iterator asserts against structural mutation of the tree while
// iterating; mutating mid-iteration is a contract violation.
func (t *Tree[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		cursor := t.NewCursor()
		for {
			node, err := cursor.Next()
			assert(err == nil, "avl: tree modified during iteration")
			if node == nil {
				return
			}
			if !yield(node) {
				return
			}
		}
	}
}

// Values returns an in-order iterator over the tree's values.
func (t *Tree[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range t.Nodes() {
			if !yield(node.value) {
				return
			}
		}
	}
}
