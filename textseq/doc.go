/*
Package textseq builds sequences from text sources.

The package connects the positional sequences of seqtree to text input: it
segments plain text into wrappable fragments, extracts the text content of
HTML, and loads files fragment by fragment in the background while
broadcasting progress to interested observers.

The backing tree of a sequence is single-writer; the asynchronous loader
honors that by touching the sequence only from its loader goroutine and
handing it over after loading completed.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package textseq

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}

var (
	// ErrNotRegularFile signals that a load target is not a regular file.
	ErrNotRegularFile = errors.New("textseq: not a regular file")
	// ErrLoadIncomplete signals that background loading failed before the
	// whole file was read.
	ErrLoadIncomplete = errors.New("textseq: file load incomplete")
)
