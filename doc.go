/*
Package seqtree maintains dynamic ordered sequences of opaque values.

Sequences do not compare their values. Order is purely positional: values
enter a sequence at its front or back, and whole runs of values move between
sequences by splitting and concatenation, both in O(log n). This makes
sequences a building block for algorithms which maintain a dynamic total
order, where comparison-based containers cannot help.

A sequence is backed by a threaded, height-balanced tree (package avl of this
module), which additionally provides O(1) first/last access, O(1) in-order
neighbor queries and stable node handles across all restructuring.

	seq := seqtree.New[string]()
	seq.Append("world")
	seq.Prepend("hello")
	rest := seq.SplitBefore(seq.Last())   // seq = [hello], rest = [world]
	seq.Concat(rest)                      // seq = [hello world] again

Sequences are not safe for concurrent use; access must be serialized by the
caller.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package seqtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeqError is an error type for the seqtree module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrSeqCompleted signals that a sequence builder has already completed a
// sequence and it's illegal to further stage values.
const ErrSeqCompleted = SeqError("forbidden to stage values; sequence has been completed")

// ErrIndexOutOfBounds is flagged whenever a sequence position is greater than
// the length of the sequence.
const ErrIndexOutOfBounds = SeqError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")
