package seqtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder[int]()
	seq := b.Seq()
	if !seq.IsVoid() {
		t.Errorf("expected void sequence from empty builder")
	}
}

func TestBuilderAppendPrepend(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder[string]()
	if err := b.Append("brown"); err != nil {
		t.Fatal(err)
	}
	if err := b.Append("fox"); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend("quick"); err != nil {
		t.Fatal(err)
	}
	if err := b.Prepend("the"); err != nil {
		t.Fatal(err)
	}
	seq := b.Seq()
	if s := seq.String(); s != "[the quick brown fox]" {
		t.Errorf("built sequence = %q", s)
	}
}

func TestBuilderCompleted(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder[int]()
	if err := b.AppendAll(1, 2, 3); err != nil {
		t.Fatal(err)
	}
	first := b.Seq()
	if err := b.Append(4); !errors.Is(err, ErrSeqCompleted) {
		t.Errorf("expected ErrSeqCompleted, got %v", err)
	}
	// Seq may be called again and returns the same build
	if again := b.Seq(); again != first {
		t.Errorf("expected repeated Seq() to return the same sequence")
	}
}

func TestBuilderReset(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewBuilder[int]()
	_ = b.AppendAll(1, 2, 3)
	_ = b.Seq()
	b.Reset()
	if err := b.Append(9); err != nil {
		t.Fatalf("append after Reset failed: %v", err)
	}
	if s := b.Seq().String(); s != "[9]" {
		t.Errorf("rebuilt sequence = %q", s)
	}
}
