package avl

// Node is one element of the ordered sequence held by a Tree.
//
// A node carries its value plus the structural and navigational links the
// tree maintains for it. Clients obtain nodes from insertion and may keep
// them as stable handles: splits, merges and rotations relink nodes but never
// copy or replace them. All mutating methods are package-private; clients see
// a read-only view.
type Node[T any] struct {
	value T

	parent *Node[T]
	left   *Node[T]
	right  *Node[T]

	// predecessor/successor form a doubly linked list consistent with the
	// in-order traversal of the whole tree. Maintained incrementally, never
	// recomputed by traversal.
	predecessor *Node[T]
	successor   *Node[T]

	// subtreeMin/subtreeMax cache the extreme nodes of the subtree rooted
	// here. For a leaf both point to the node itself.
	subtreeMin *Node[T]
	subtreeMax *Node[T]

	height      int
	subtreeSize int
}

func newNode[T any](value T) *Node[T] {
	n := &Node[T]{value: value}
	n.reset()
	return n
}

// Value returns the value stored in this node.
func (n *Node[T]) Value() T { return n.value }

// Parent returns the parent of this node, or nil for a detached node.
// For the root of a tree the parent is the tree's unexported sentinel.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Left returns the left child of this node.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child of this node.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Successor returns the node following this one in sequence order, or nil if
// this node is the maximum of its tree.
func (n *Node[T]) Successor() *Node[T] { return n.successor }

// Predecessor returns the node preceding this one in sequence order, or nil
// if this node is the minimum of its tree.
func (n *Node[T]) Predecessor() *Node[T] { return n.predecessor }

// SubtreeMin returns the minimum node of the subtree rooted at this node.
func (n *Node[T]) SubtreeMin() *Node[T] { return n.subtreeMin }

// SubtreeMax returns the maximum node of the subtree rooted at this node.
func (n *Node[T]) SubtreeMax() *Node[T] { return n.subtreeMax }

// Height returns the height of the subtree rooted at this node; a leaf has
// height 1.
func (n *Node[T]) Height() int { return n.height }

// SubtreeSize returns the number of nodes in the subtree rooted at this node.
func (n *Node[T]) SubtreeSize() int { return n.subtreeSize }

// Root walks the parent chain to the top and returns the caller-visible root
// of the tree this node belongs to.
func (n *Node[T]) Root() *Node[T] {
	current := n
	for current.parent != nil {
		current = current.parent
	}
	return current.left
}

// TreeMin returns the minimum node of the tree this node belongs to.
func (n *Node[T]) TreeMin() *Node[T] {
	return n.Root().subtreeMin
}

// TreeMax returns the maximum node of the tree this node belongs to.
func (n *Node[T]) TreeMax() *Node[T] {
	return n.Root().subtreeMax
}

// reset detaches all links and turns the node into a valid singleton subtree.
func (n *Node[T]) reset() {
	n.height = 1
	n.subtreeSize = 1
	n.subtreeMin = n
	n.subtreeMax = n
	n.left, n.right, n.parent = nil, nil, nil
	n.predecessor, n.successor = nil, nil
}

func (n *Node[T]) leftHeight() int {
	if n.left == nil {
		return 0
	}
	return n.left.height
}

func (n *Node[T]) rightHeight() int {
	if n.right == nil {
		return 0
	}
	return n.right.height
}

func (n *Node[T]) leftSubtreeSize() int {
	if n.left == nil {
		return 0
	}
	return n.left.subtreeSize
}

func (n *Node[T]) rightSubtreeSize() int {
	if n.right == nil {
		return 0
	}
	return n.right.subtreeSize
}

// updateHeightAndSubtreeSize recomputes the node's aggregates from its
// children's cached values. Must run after every structural change to the
// node's children.
func (n *Node[T]) updateHeightAndSubtreeSize() {
	n.height = max(n.leftHeight(), n.rightHeight()) + 1
	n.subtreeSize = n.leftSubtreeSize() + n.rightSubtreeSize() + 1
}

// isLeftDoubleHeavy reports a balance violation towards the left child:
// the left subtree is more than one level higher than the right one.
func (n *Node[T]) isLeftDoubleHeavy() bool {
	return n.leftHeight() > n.rightHeight()+1
}

// isRightDoubleHeavy reports a balance violation towards the right child.
func (n *Node[T]) isRightDoubleHeavy() bool {
	return n.rightHeight() > n.leftHeight()+1
}

func (n *Node[T]) isLeftHeavy() bool {
	return n.leftHeight() > n.rightHeight()
}

func (n *Node[T]) isRightHeavy() bool {
	return n.rightHeight() > n.leftHeight()
}

func (n *Node[T]) isLeftChild() bool {
	return n == n.parent.left
}

func (n *Node[T]) isRightChild() bool {
	return n == n.parent.right
}

// setSuccessor wires n.successor = node and, for a non-nil node, the reverse
// predecessor link as well. Threading assignment is always paired.
func (n *Node[T]) setSuccessor(node *Node[T]) {
	n.successor = node
	if node != nil {
		node.predecessor = n
	}
}

// setPredecessor is the mirror of setSuccessor.
func (n *Node[T]) setPredecessor(node *Node[T]) {
	n.predecessor = node
	if node != nil {
		node.successor = n
	}
}

// setLeftChild installs node as the left child, adopting its parent link,
// its subtree minimum and the threading towards its subtree maximum. A nil
// node clears the left slot.
//
// The caller must recompute aggregates via updateHeightAndSubtreeSize; this
// method only wires links.
func (n *Node[T]) setLeftChild(node *Node[T]) {
	n.left = node
	if node != nil {
		node.parent = n
		n.setPredecessor(node.subtreeMax)
		n.subtreeMin = node.subtreeMin
	} else {
		n.subtreeMin = n
		n.predecessor = nil
	}
}

// setRightChild installs node as the right child, the mirror of setLeftChild.
func (n *Node[T]) setRightChild(node *Node[T]) {
	n.right = node
	if node != nil {
		node.parent = n
		n.setSuccessor(node.subtreeMin)
		n.subtreeMax = node.subtreeMax
	} else {
		n.successor = nil
		n.subtreeMax = n
	}
}

// substituteChild replaces whichever child slot currently holds prevChild
// with newChild. prevChild must be exactly one of the two children; anything
// else is tree corruption.
func (n *Node[T]) substituteChild(prevChild, newChild *Node[T]) {
	assert(n.left == prevChild || n.right == prevChild,
		"avl: substituteChild: node is not a child")
	assert(!(n.left == prevChild && n.right == prevChild),
		"avl: substituteChild: ambiguous child slot")
	if n.left == prevChild {
		n.setLeftChild(newChild)
	} else {
		n.setRightChild(newChild)
	}
}
