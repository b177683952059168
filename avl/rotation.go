package avl

// Local rebalancing, classic AVL style. Each rotation relinks a constant
// number of nodes and recomputes their aggregates bottom-up. All functions
// return the node which now occupies the rotated node's former structural
// slot; callers substitute that return value into the parent.

// rotateRight promotes node.left into node's position; node becomes the new
// subroot's right child.
func rotateRight[T any](node *Node[T]) *Node[T] {
	left := node.left
	left.parent = nil
	node.setLeftChild(left.right)
	left.setRightChild(node)
	node.updateHeightAndSubtreeSize()
	left.updateHeightAndSubtreeSize()
	return left
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T any](node *Node[T]) *Node[T] {
	right := node.right
	right.parent = nil
	node.setRightChild(right.left)
	right.setLeftChild(node)
	node.updateHeightAndSubtreeSize()
	right.updateHeightAndSubtreeSize()
	return right
}

// balanceNode refreshes node's aggregates and restores the AVL balance rule
// at node if violated, handling the double-rotation cases. It returns the
// new local subroot, which is node itself when no rotation occurred.
func balanceNode[T any](node *Node[T]) *Node[T] {
	node.updateHeightAndSubtreeSize()
	if node.isLeftDoubleHeavy() {
		if node.left.isRightHeavy() {
			node.setLeftChild(rotateLeft(node.left))
		}
		rotateRight(node)
		return node.parent
	} else if node.isRightDoubleHeavy() {
		if node.right.isLeftHeavy() {
			node.setRightChild(rotateRight(node.right))
		}
		rotateLeft(node)
		return node.parent
	}
	return node
}
