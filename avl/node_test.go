package avl

import (
	"strings"
	"testing"
)

func TestNodeAccessors(t *testing.T) {
	tree := New[string]()
	a := tree.AddMax("a")
	b := tree.AddMax("b")
	c := tree.AddMax("c")

	if a.Value() != "a" || b.Value() != "b" || c.Value() != "c" {
		t.Fatalf("values lost")
	}
	if a.Successor() != b || b.Successor() != c || c.Successor() != nil {
		t.Fatalf("successor threading wrong")
	}
	if c.Predecessor() != b || b.Predecessor() != a || a.Predecessor() != nil {
		t.Fatalf("predecessor threading wrong")
	}
	if a.TreeMin() != a || a.TreeMax() != c {
		t.Fatalf("tree extremes wrong")
	}
	if b.Root() != tree.Root() {
		t.Fatalf("Root() does not reach the tree root")
	}
}

func TestSubtreeCaches(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 7; i++ {
		tree.AddMax(i)
	}
	root := tree.Root()
	if root.SubtreeMin() != tree.Min() || root.SubtreeMax() != tree.Max() {
		t.Fatalf("root subtree extremes do not match tree extremes")
	}
	if root.SubtreeSize() != 7 {
		t.Fatalf("root subtree size = %d", root.SubtreeSize())
	}
	if left := root.Left(); left != nil {
		if left.SubtreeMin() != tree.Min() {
			t.Fatalf("left child subtree min is not the tree min")
		}
		if left.SubtreeSize() != left.leftSubtreeSize()+left.rightSubtreeSize()+1 {
			t.Fatalf("subtree size identity broken")
		}
	}
}

func TestThreadingPairsAcrossRotations(t *testing.T) {
	tree := New[int]()
	// monotone insertion forces rotations on nearly every step
	for i := 0; i < 64; i++ {
		tree.AddMax(i)
	}
	for node := tree.Min(); node != nil; node = node.Successor() {
		if s := node.Successor(); s != nil && s.Predecessor() != node {
			t.Fatalf("threading pair broken at %d", node.Value())
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestSubstituteChildContract(t *testing.T) {
	tree := New[int]()
	tree.AddMax(1)
	tree.AddMax(2)
	tree.AddMax(3)
	root := tree.Root()
	stranger := newNode(99)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("substituting a non-child should panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "substituteChild") {
			t.Fatalf("unexpected panic payload: %v", r)
		}
	}()
	root.substituteChild(stranger, nil)
}

func TestDotOutput(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 5; i++ {
		tree.AddMax(i)
	}
	var bf strings.Builder
	Dot(tree, &bf)
	out := bf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("DOT output malformed:\n%s", out)
	}
	if !strings.Contains(out, "style=dashed") {
		t.Fatalf("DOT output misses threading edges:\n%s", out)
	}
}
