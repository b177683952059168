package textseq

import (
	"io"
	"strings"

	"github.com/npillmayer/seqtree"
	"golang.org/x/net/html"
)

// InnerText creates a fragment sequence for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that textseq.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
//
// Fragments are the word-level segments of the text nodes, in document
// order.
func InnerText(n *html.Node) (*seqtree.Seq[string], error) {
	if n == nil {
		return nil, seqtree.ErrIllegalArguments
	}
	b := seqtree.NewBuilder[string]()
	collectText(n, b)
	return b.Seq(), nil
}

func collectText(n *html.Node, b *seqtree.Builder[string]) {
	if n.Type == html.TextNode {
		for frag := range Words(n.Data).Values() {
			if err := b.Append(frag); err != nil {
				tracer().Errorf("HTML text: %s", err.Error())
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// FromHTML creates a fragment sequence from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func FromHTML(input io.Reader) (*seqtree.Seq[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := seqtree.NewBuilder[string]()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b.Seq(), nil
}

// FromHTMLString is a convenience wrapper around FromHTML.
func FromHTMLString(input string) (*seqtree.Seq[string], error) {
	return FromHTML(strings.NewReader(input))
}
