package avl

import "fmt"

// Check validates the structural invariants of this tree: height balance,
// cached subtree sizes, cached subtree extremes, predecessor/successor
// threading and parent-link consistency.
//
// The checker is intentionally strict and meant for tests; all public
// operations keep these invariants, so a failure indicates a bug in this
// package or a corrupted node handle.
func (t *Tree[T]) Check() error {
	root := t.Root()
	if root == nil {
		return nil
	}
	if root.parent != t.virtualRoot {
		return fmt.Errorf("%w: root parent is not the virtual root", ErrInvariantViolation)
	}
	if _, err := t.checkNode(root); err != nil {
		return err
	}
	return t.checkThreading(root)
}

// checkNode recursively validates one subtree and returns its height.
func (t *Tree[T]) checkNode(n *Node[T]) (height int, err error) {
	leftHeight, rightHeight := 0, 0
	leftSize, rightSize := 0, 0
	if n.left != nil {
		if n.left.parent != n {
			return 0, fmt.Errorf("%w: left child has wrong parent", ErrInvariantViolation)
		}
		if leftHeight, err = t.checkNode(n.left); err != nil {
			return 0, err
		}
		leftSize = n.left.subtreeSize
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, fmt.Errorf("%w: right child has wrong parent", ErrInvariantViolation)
		}
		if rightHeight, err = t.checkNode(n.right); err != nil {
			return 0, err
		}
		rightSize = n.right.subtreeSize
	}
	if diff := leftHeight - rightHeight; diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: unbalanced node (left height %d, right height %d)",
			ErrInvariantViolation, leftHeight, rightHeight)
	}
	if n.height != max(leftHeight, rightHeight)+1 {
		return 0, fmt.Errorf("%w: cached height %d, recomputed %d",
			ErrInvariantViolation, n.height, max(leftHeight, rightHeight)+1)
	}
	if n.subtreeSize != leftSize+rightSize+1 {
		return 0, fmt.Errorf("%w: cached subtree size %d, recomputed %d",
			ErrInvariantViolation, n.subtreeSize, leftSize+rightSize+1)
	}
	if err := t.checkExtremes(n); err != nil {
		return 0, err
	}
	return n.height, nil
}

// checkExtremes validates that the cached subtree extremes are the ends of
// the left and right spines.
func (t *Tree[T]) checkExtremes(n *Node[T]) error {
	min := n
	for min.left != nil {
		min = min.left
	}
	if n.subtreeMin != min {
		return fmt.Errorf("%w: stale subtree minimum cache", ErrInvariantViolation)
	}
	max := n
	for max.right != nil {
		max = max.right
	}
	if n.subtreeMax != max {
		return fmt.Errorf("%w: stale subtree maximum cache", ErrInvariantViolation)
	}
	return nil
}

// checkThreading walks the successor list from the tree minimum and verifies
// that it visits every node exactly once, that predecessor links mirror it,
// and that it terminates after the tree maximum.
func (t *Tree[T]) checkThreading(root *Node[T]) error {
	min := root.subtreeMin
	if min.predecessor != nil {
		return fmt.Errorf("%w: tree minimum has a predecessor", ErrInvariantViolation)
	}
	count := 0
	var prev *Node[T]
	for node := min; node != nil; node = node.successor {
		if node.predecessor != prev {
			return fmt.Errorf("%w: broken predecessor link at position %d",
				ErrInvariantViolation, count)
		}
		count++
		if count > root.subtreeSize {
			return fmt.Errorf("%w: successor chain longer than tree size %d",
				ErrInvariantViolation, root.subtreeSize)
		}
		prev = node
	}
	if prev != root.subtreeMax {
		return fmt.Errorf("%w: successor chain does not end at the tree maximum",
			ErrInvariantViolation)
	}
	if count != root.subtreeSize {
		return fmt.Errorf("%w: successor chain visits %d nodes, tree size is %d",
			ErrInvariantViolation, count, root.subtreeSize)
	}
	return nil
}
