/*
Package avl provides a height-balanced binary tree over an ordered sequence
of opaque values.

The package is intentionally not a binary search tree. There is no comparison
function over values and the same value may be stored many times. Order is
purely positional: values enter a tree at its minimum or maximum end, and
whole runs of values move between trees through split and merge. This is the
shape of tree needed by algorithms which maintain a dynamic total order, e.g.
chain construction or interval bookkeeping.

On top of the classic AVL balance rule the tree maintains three more caches
per node, all updated incrementally during rotations, splits and joins:

  - subtree size, giving O(1) Size and O(log n) positional lookup,
  - subtree minimum/maximum, giving O(1) Min and Max,
  - predecessor/successor threading, giving O(1) in-order neighbors and
    stackless in-order iteration.

Splitting and concatenating two trees both build on a single join primitive
(Knuth, The Art of Computer Programming, vol. 3, §6.2.3) and run in O(log n).

Node handles returned from insertion stay valid across rotations, splits and
merges; only a node's links change, never its identity.

Trees are not safe for concurrent use. A tree (and any node handle shared
between trees during split/merge) must be confined to a single writer with no
concurrent readers during writes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
