package avl

import (
	"fmt"
	"strings"
)

// Tree maintains an ordered sequence of opaque values in a height-balanced
// binary tree. The zero value is not usable; create trees with New.
//
// A permanent sentinel node (the virtual root) sits above the real root, so
// root replacement during rebalancing is ordinary child substitution. The
// sentinel carries no value and never appears in iteration or size counts.
type Tree[T any] struct {
	virtualRoot *Node[T]
	// modCount invalidates in-flight cursors on structural mutation.
	modCount uint64
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	t := &Tree[T]{virtualRoot: &Node[T]{}}
	t.virtualRoot.reset()
	return t
}

// newTreeWithRoot wraps an already balanced subtree in a fresh Tree.
func newTreeWithRoot[T any](root *Node[T]) *Tree[T] {
	t := New[T]()
	t.makeRoot(root)
	return t
}

// Root returns the root node of this tree, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.virtualRoot.left
}

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.Root() == nil
}

// Size returns the number of nodes in this tree in O(1).
func (t *Tree[T]) Size() int {
	if t.Root() == nil {
		return 0
	}
	return t.Root().subtreeSize
}

// Min returns the minimum node of this tree in O(1), or nil if empty.
func (t *Tree[T]) Min() *Node[T] {
	if t.Root() == nil {
		return nil
	}
	return t.Root().subtreeMin
}

// Max returns the maximum node of this tree in O(1), or nil if empty.
func (t *Tree[T]) Max() *Node[T] {
	if t.Root() == nil {
		return nil
	}
	return t.Root().subtreeMax
}

// Successor returns the node following node in sequence order, or nil if
// node is the tree maximum.
func (t *Tree[T]) Successor(node *Node[T]) *Node[T] {
	return node.successor
}

// Predecessor returns the node preceding node in sequence order, or nil if
// node is the tree minimum.
func (t *Tree[T]) Predecessor(node *Node[T]) *Node[T] {
	return node.predecessor
}

// AddMax inserts value as the new maximum of this tree in O(log n) and
// returns the node holding it.
func (t *Tree[T]) AddMax(value T) *Node[T] {
	newMax := newNode(value)
	t.AddMaxNode(newMax)
	return newMax
}

// AddMaxNode attaches newMax as the new maximum node of this tree.
//
// newMax must be a detached singleton node, e.g. fresh from insertion into
// another tree and later removal.
func (t *Tree[T]) AddMaxNode(newMax *Node[T]) {
	assert(newMax != nil, "avl: AddMaxNode: nil node")
	t.registerModification()

	if t.IsEmpty() {
		t.virtualRoot.left = newMax
		newMax.parent = t.virtualRoot
		return
	}
	max := t.Max()
	max.setRightChild(newMax)
	t.balance(max)
}

// AddMin inserts value as the new minimum of this tree in O(log n) and
// returns the node holding it.
func (t *Tree[T]) AddMin(value T) *Node[T] {
	newMin := newNode(value)
	t.AddMinNode(newMin)
	return newMin
}

// AddMinNode attaches newMin as the new minimum node of this tree.
func (t *Tree[T]) AddMinNode(newMin *Node[T]) {
	assert(newMin != nil, "avl: AddMinNode: nil node")
	t.registerModification()

	if t.IsEmpty() {
		t.virtualRoot.left = newMin
		newMin.parent = t.virtualRoot
		return
	}
	min := t.Min()
	min.setLeftChild(newMin)
	t.balance(min)
}

// RemoveMin detaches the minimum node from this tree and returns it as a
// clean singleton, or nil if the tree is empty.
func (t *Tree[T]) RemoveMin() *Node[T] {
	t.registerModification()

	if t.IsEmpty() {
		return nil
	}
	min := t.Min()
	// The minimum has no left child, so its right child takes its place.
	if min.parent == t.virtualRoot {
		t.makeRoot(min.right)
	} else {
		parent := min.parent
		parent.setLeftChild(min.right)
		t.balance(parent)
	}
	min.reset()
	return min
}

// RemoveMax detaches the maximum node from this tree and returns it as a
// clean singleton, or nil if the tree is empty.
func (t *Tree[T]) RemoveMax() *Node[T] {
	t.registerModification()

	if t.IsEmpty() {
		return nil
	}
	max := t.Max()
	if max.parent == t.virtualRoot {
		t.makeRoot(max.left)
	} else {
		parent := max.parent
		parent.setRightChild(max.left)
		t.balance(parent)
	}
	max.reset()
	return max
}

// At returns the node at positional index (0-based rank) in O(log n).
//
// This is rank selection over the cached subtree sizes, not a search by
// value; the tree has no ordering over values.
func (t *Tree[T]) At(index int) (*Node[T], error) {
	if index < 0 || index >= t.Size() {
		return nil, ErrIndexOutOfBounds
	}
	node := t.Root()
	for {
		leftSize := node.leftSubtreeSize()
		switch {
		case index < leftSize:
			node = node.left
		case index == leftSize:
			return node, nil
		default:
			index -= leftSize + 1
			node = node.right
		}
	}
}

// Clear removes all nodes from this tree.
//
// Memory held by the node structure stays reachable as long as clients keep
// external node handles.
func (t *Tree[T]) Clear() {
	t.registerModification()
	t.virtualRoot.left = nil
}

// makeRoot installs node as the root of this tree. A nil node empties the
// tree. The new root's extreme nodes terminate the threading list.
func (t *Tree[T]) makeRoot(node *Node[T]) {
	t.virtualRoot.left = node
	if node != nil {
		node.subtreeMax.successor = nil
		node.subtreeMin.predecessor = nil
		node.parent = t.virtualRoot
	}
}

// balance restores the AVL invariant on the path from node up to the virtual
// root, substituting each ancestor with its locally rebalanced subroot.
func (t *Tree[T]) balance(node *Node[T]) {
	for node != t.virtualRoot {
		parent := node.parent
		if parent == t.virtualRoot {
			t.makeRoot(balanceNode(node))
		} else {
			parent.substituteChild(node, balanceNode(node))
		}
		node = parent
	}
}

// swap exchanges the entire contents of this tree and other.
func (t *Tree[T]) swap(other *Tree[T]) {
	root := t.virtualRoot.left
	t.makeRoot(other.virtualRoot.left)
	other.makeRoot(root)
}

func (t *Tree[T]) registerModification() {
	t.modCount++
}

// String renders the value sequence in order, for debugging.
func (t *Tree[T]) String() string {
	var bf strings.Builder
	bf.WriteByte('[')
	for node := t.Min(); node != nil; node = node.successor {
		if node != t.Min() {
			bf.WriteByte(' ')
		}
		fmt.Fprintf(&bf, "%v", node.value)
	}
	bf.WriteByte(']')
	return bf.String()
}
