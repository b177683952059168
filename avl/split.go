package avl

// Splitting and concatenation. Both directions build on a single join
// primitive for AVL concatenation; the splitting walk is the algorithm from
// Donald E. Knuth, The Art of Computer Programming, Second Edition, Volume 3,
// Sorting and Searching, p. 474.

// SplitAfter splits the sequence right after node.
//
// Nodes up to and including node stay in this tree; the strictly greater
// part is returned as a new tree. node must belong to this tree. Runs in
// O(log n).
func (t *Tree[T]) SplitAfter(node *Node[T]) *Tree[T] {
	assert(node != nil, "avl: SplitAfter: nil node")
	t.registerModification()

	parent := node.parent
	wasLeftChild := node.isLeftChild()
	left := node.left
	right := node.right

	node.parent.substituteChild(node, nil)
	node.reset()

	if left != nil {
		left.parent = nil
	}
	if right != nil {
		right.parent = nil
	}

	if left == nil {
		left = node
	} else {
		// Reinsert node as the maximum of its former left subtree, then
		// rebalance the attachment path the same way AddMaxNode does.
		max := left.subtreeMax
		max.setRightChild(node)
		for max != left {
			p := max.parent
			p.substituteChild(max, balanceNode(max))
			max = p
		}
		left = balanceNode(left)
	}
	return t.splitUp(left, right, parent, wasLeftChild)
}

// SplitBefore splits the sequence right before node.
//
// Nodes smaller than node stay in this tree; node and everything after it is
// returned as a new tree. node must belong to this tree. Runs in O(log n).
func (t *Tree[T]) SplitBefore(node *Node[T]) *Tree[T] {
	assert(node != nil, "avl: SplitBefore: nil node")
	t.registerModification()

	predecessor := node.predecessor
	if predecessor == nil {
		// node is the tree minimum: everything moves to the returned tree.
		tree := New[T]()
		t.swap(tree)
		return tree
	}
	return t.SplitAfter(predecessor)
}

// splitUp walks from parent up to the virtual root, folding every ancestor
// into the left or right accumulator depending on which side the walk came
// from. Each ancestor becomes the junction of exactly one join.
func (t *Tree[T]) splitUp(left, right, parent *Node[T], leftMove bool) *Tree[T] {
	p := parent
	for p != t.virtualRoot {
		nextMove := p.isLeftChild()
		nextP := p.parent

		p.parent.substituteChild(p, nil)
		p.parent = nil

		if leftMove {
			right = join(p, right, p.right)
		} else {
			left = join(p, p.left, left)
		}
		p = nextP
		leftMove = nextMove
	}

	t.makeRoot(left)

	return newTreeWithRoot(right)
}

// MergeAfter appends the whole sequence of other after this tree's sequence
// in O(log n). other is emptied; its nodes move into this tree.
func (t *Tree[T]) MergeAfter(other *Tree[T]) {
	t.registerModification()

	if other.IsEmpty() {
		return
	} else if other.Size() == 1 {
		t.AddMaxNode(other.RemoveMin())
		return
	}

	junction := other.RemoveMin()
	otherRoot := other.Root()
	other.Clear()

	t.makeRoot(join(junction, t.Root(), otherRoot))
}

// MergeBefore prepends the whole sequence of other before this tree's
// sequence in O(log n). other is emptied; its nodes move into this tree.
func (t *Tree[T]) MergeBefore(other *Tree[T]) {
	t.registerModification()

	other.MergeAfter(t)

	t.swap(other)
}

// join concatenates the left and right subtrees around the junction node and
// returns the root of the combined, balanced tree.
//
// The recursion descends into the taller subtree's near side until the height
// gap closes to at most one level, so total work is bounded by the height
// difference. The junction node reaches the base case as a clean singleton.
func join[T any](junction, left, right *Node[T]) *Node[T] {
	if left == nil && right == nil {
		junction.reset()
		return junction
	} else if left == nil {
		right.setLeftChild(join(junction, left, right.left))
		return balanceNode(right)
	} else if right == nil {
		left.setRightChild(join(junction, left.right, right))
		return balanceNode(left)
	} else if left.height > right.height+1 {
		left.setRightChild(join(junction, left.right, right))
		return balanceNode(left)
	} else if right.height > left.height+1 {
		right.setLeftChild(join(junction, left, right.left))
		return balanceNode(right)
	}
	junction.setLeftChild(left)
	junction.setRightChild(right)
	return balanceNode(junction)
}
