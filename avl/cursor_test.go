package avl

import (
	"errors"
	"testing"
)

func TestCursorWalksInOrder(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 9; i++ {
		tree.AddMax(i)
	}
	cursor := tree.NewCursor()
	for i := 0; i < 9; i++ {
		node, err := cursor.Next()
		if err != nil {
			t.Fatalf("cursor failed at %d: %v", i, err)
		}
		if node == nil || node.Value() != i {
			t.Fatalf("cursor out of order at %d: %v", i, node)
		}
	}
	node, err := cursor.Next()
	if err != nil || node != nil {
		t.Fatalf("exhausted cursor should return nil, got %v / %v", node, err)
	}
	// an exhausted cursor stays exhausted
	if node, _ := cursor.Next(); node != nil {
		t.Fatalf("exhausted cursor returned a node")
	}
}

func TestCursorOnEmptyTree(t *testing.T) {
	cursor := New[int]().NewCursor()
	node, err := cursor.Next()
	if node != nil || err != nil {
		t.Fatalf("cursor on empty tree should be exhausted, got %v / %v", node, err)
	}
}

func TestCursorDetectsMutation(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 5; i++ {
		tree.AddMax(i)
	}
	cursor := tree.NewCursor()
	if _, err := cursor.Next(); err != nil {
		t.Fatalf("first advance failed: %v", err)
	}
	tree.AddMax(5)
	if _, err := cursor.Next(); !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	// the failure is sticky
	if _, err := cursor.Next(); !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected sticky ErrConcurrentModification, got %v", err)
	}
}

func TestCursorDetectsSplit(t *testing.T) {
	tree := New[int]()
	var mid *Node[int]
	for i := 0; i < 8; i++ {
		n := tree.AddMax(i)
		if i == 3 {
			mid = n
		}
	}
	cursor := tree.NewCursor()
	tree.SplitAfter(mid)
	if _, err := cursor.Next(); !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification after split, got %v", err)
	}
}

func TestValuesIterator(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 6; i++ {
		tree.AddMax(i)
	}
	want := 0
	for v := range tree.Values() {
		if v != want {
			t.Fatalf("Values() out of order: got %d, want %d", v, want)
		}
		want++
	}
	if want != 6 {
		t.Fatalf("Values() visited %d nodes, want 6", want)
	}
}

func TestNodesIteratorEarlyStop(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 6; i++ {
		tree.AddMax(i)
	}
	count := 0
	for range tree.Nodes() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("early stop visited %d nodes", count)
	}
}
