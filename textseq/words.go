package textseq

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/seqtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Words segments text into wrappable fragments (words together with their
// adjacent punctuation) and returns them as a sequence, in text order.
//
// Segmentation follows Unicode Annex #14 line-wrap opportunities, so
// fragment boundaries are exactly the positions where a formatter could
// break the text.
func Words(text string) *seqtree.Seq[string] {
	return WordsFromReader(strings.NewReader(text))
}

// WordsFromReader reads all of input and segments it like Words.
func WordsFromReader(input io.Reader) *seqtree.Seq[string] {
	b := seqtree.NewBuilder[string]()
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(input))
	for segmenter.Next() {
		frag := strings.TrimSpace(string(segmenter.Bytes()))
		if frag == "" {
			continue
		}
		if err := b.Append(frag); err != nil {
			tracer().Errorf("word sequence: %s", err.Error())
			break
		}
	}
	return b.Seq()
}

// FragmentWidth returns the display width of a text fragment in fixed-width
// character cells, respecting grapheme cluster boundaries and East Asian
// width properties. The width context is derived from the user environment.
func FragmentWidth(frag string) int {
	gstr := grapheme.StringFromString(frag)
	return uax11.StringWidth(gstr, uax11.ContextFromEnvironment())
}
