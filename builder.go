package seqtree

import "github.com/npillmayer/schuko/gtrace"

// Builder incrementally stages values and finalizes them into a Seq.
//
// Builder collects values at the front and back of a staged sequence and
// materializes the backing tree only when Seq() is called. Once built, the
// sequence is handed to the caller and further staging is illegal.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T any] struct {
	// front keeps prepended values in reverse logical order.
	front []T
	// back keeps appended values in logical order.
	back []T

	done  bool
	dirty bool
	seq   *Seq[T]
}

// NewBuilder creates a new and empty sequence builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Seq returns the sequence built from all staged values.
//
// It is illegal to continue staging values after Seq has been called, but
// Seq may be called multiple times.
func (b *Builder[T]) Seq() *Seq[T] {
	if b == nil {
		return New[T]()
	}
	if b.dirty || b.seq == nil {
		b.seq = b.buildSeq()
		b.dirty = false
	}
	b.done = true
	if b.seq.IsVoid() {
		// type parameter T shadows the package-level tracer func T()
		gtrace.CoreTracer.Debugf("sequence builder: sequence is void")
	}
	return b.seq
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.seq = nil
}

// Append stages a value at the back of the build.
func (b *Builder[T]) Append(value T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSeqCompleted
	}
	b.back = append(b.back, value)
	b.dirty = true
	return nil
}

// Prepend stages a value at the front of the build.
func (b *Builder[T]) Prepend(value T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrSeqCompleted
	}
	// front is stored in reverse logical order.
	b.front = append(b.front, value)
	b.dirty = true
	return nil
}

// AppendAll stages values at the back of the build, in order.
func (b *Builder[T]) AppendAll(values ...T) error {
	for _, v := range values {
		if err := b.Append(v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder[T]) buildSeq() *Seq[T] {
	seq := New[T]()
	tree := seq.Tree()
	// replaying prepends in staging order reproduces their logical order
	for _, v := range b.front {
		tree.AddMin(v)
	}
	for _, v := range b.back {
		tree.AddMax(v)
	}
	return seq
}
