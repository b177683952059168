package seqtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/seqtree/avl"
)

// Seq is a dynamic ordered sequence of opaque values.
//
// A sequence never compares its values; positions are established solely by
// Append/Prepend and by splitting or concatenating sequences. Operations
// return node handles (*avl.Node) which stay valid while the node is part of
// some sequence, no matter how often the backing tree restructures itself.
//
// Due to the tree backing, sequences have performance characteristics
// differing from Go slices:
//
//	Operation     |   Seq           |  Slice
//	--------------+-----------------+--------
//	At            |   O(log n)      |   O(1)
//	Split         |   O(log n)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(log n)      |   O(n)
//	Append        |   O(log n)      |   amortized O(1)
//	Prepend       |   O(log n)      |   O(n)
//
// Create sequences with New.
type Seq[T any] struct {
	tree *avl.Tree[T]
}

// New creates an empty sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{tree: avl.New[T]()}
}

func fromTree[T any](tree *avl.Tree[T]) *Seq[T] {
	return &Seq[T]{tree: tree}
}

// Tree exposes the backing tree for structural inspection, e.g. for the
// pretty and DOT debugging helpers. Mutating the tree directly is legal and
// equivalent to the corresponding Seq operation.
func (seq *Seq[T]) Tree() *avl.Tree[T] {
	return seq.tree
}

// Len returns the number of values in the sequence.
func (seq *Seq[T]) Len() int {
	return seq.tree.Size()
}

// IsVoid reports whether the sequence has no values.
func (seq *Seq[T]) IsVoid() bool {
	return seq.tree.IsEmpty()
}

// Append adds value at the back of the sequence and returns its node handle.
func (seq *Seq[T]) Append(value T) *avl.Node[T] {
	return seq.tree.AddMax(value)
}

// Prepend adds value at the front of the sequence and returns its node
// handle.
func (seq *Seq[T]) Prepend(value T) *avl.Node[T] {
	return seq.tree.AddMin(value)
}

// First returns the handle of the first value, or nil for a void sequence.
func (seq *Seq[T]) First() *avl.Node[T] {
	return seq.tree.Min()
}

// Last returns the handle of the last value, or nil for a void sequence.
func (seq *Seq[T]) Last() *avl.Node[T] {
	return seq.tree.Max()
}

// RemoveFirst detaches and returns the first node of the sequence, or nil
// for a void sequence.
func (seq *Seq[T]) RemoveFirst() *avl.Node[T] {
	return seq.tree.RemoveMin()
}

// RemoveLast detaches and returns the last node of the sequence, or nil for
// a void sequence.
func (seq *Seq[T]) RemoveLast() *avl.Node[T] {
	return seq.tree.RemoveMax()
}

// At returns the node at position index in O(log n).
func (seq *Seq[T]) At(index int) (*avl.Node[T], error) {
	node, err := seq.tree.At(index)
	if err != nil {
		return nil, ErrIndexOutOfBounds
	}
	return node, nil
}

// SplitAfter cuts the sequence right after node. The front part stays in
// this sequence, the rest is returned as a new sequence. node must belong to
// this sequence.
func (seq *Seq[T]) SplitAfter(node *avl.Node[T]) *Seq[T] {
	return fromTree(seq.tree.SplitAfter(node))
}

// SplitBefore cuts the sequence right before node. The front part stays in
// this sequence, node and everything after it is returned as a new sequence.
// node must belong to this sequence.
func (seq *Seq[T]) SplitBefore(node *avl.Node[T]) *Seq[T] {
	return fromTree(seq.tree.SplitBefore(node))
}

// Concat appends all values of other to this sequence in O(log n). other is
// emptied; its node handles keep their values and now belong to this
// sequence.
func (seq *Seq[T]) Concat(other *Seq[T]) {
	if other == nil {
		return
	}
	seq.tree.MergeAfter(other.tree)
}

// ConcatBefore prepends all values of other to this sequence in O(log n).
// other is emptied.
func (seq *Seq[T]) ConcatBefore(other *Seq[T]) {
	if other == nil {
		return
	}
	seq.tree.MergeBefore(other.tree)
}

// Values returns an iterator over the sequence's values in order.
func (seq *Seq[T]) Values() iter.Seq[T] {
	return seq.tree.Values()
}

// Nodes returns an iterator over the sequence's node handles in order.
func (seq *Seq[T]) Nodes() iter.Seq[*avl.Node[T]] {
	return seq.tree.Nodes()
}

// Each visits all values in order together with their position. Iteration
// stops at the first callback error and returns that error to the caller.
func (seq *Seq[T]) Each(f func(value T, pos int) error) error {
	cursor := seq.tree.NewCursor()
	pos := 0
	for {
		node, err := cursor.Next()
		if err != nil {
			return err
		}
		if node == nil {
			return nil
		}
		if err := f(node.Value(), pos); err != nil {
			return err
		}
		pos++
	}
}

// String renders the value sequence, for debugging.
func (seq *Seq[T]) String() string {
	return seq.tree.String()
}
