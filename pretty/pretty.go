// Package pretty renders the structure of a sequence tree to a terminal,
// for debugging and teaching purposes.
//
// Output is one line per node, indented by depth, with node aggregates
// attached. Depths are colorized with a rotating palette when the output
// device supports it.
package pretty

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seqtree/avl"
	"golang.org/x/term"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}

// Config controls tree rendering.
type Config struct {
	// LineWidth clips each output line; 0 means no clipping.
	LineWidth int
	// Palette holds one color per depth level, cycled. A nil palette
	// renders monochrome output.
	Palette []*color.Color
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly, together with a
// default palette.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else if w > 30 {
			config.LineWidth = w - 10
		} else {
			config.LineWidth = 30
		}
		config.Palette = DefaultPalette()
	} else {
		config.LineWidth = 65
	}
	return config
}

// DefaultPalette returns the default depth coloring.
func DefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
	}
}

// Print renders the structure of tree to w. A nil config renders monochrome
// without clipping.
func Print[T any](tree *avl.Tree[T], w io.Writer, config *Config) error {
	if tree == nil || w == nil {
		return fmt.Errorf("pretty: illegal arguments")
	}
	if config == nil {
		config = &Config{}
	}
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty tree)\n")
		return err
	}
	return printNode(tree.Root(), w, config, 0)
}

// PrintStdout renders tree to stdout with a terminal-derived config.
func PrintStdout[T any](tree *avl.Tree[T]) error {
	return Print(tree, os.Stdout, ConfigFromTerminal())
}

func printNode[T any](node *avl.Node[T], w io.Writer, config *Config, depth int) error {
	if node == nil {
		return nil
	}
	if err := printNode(node.Left(), w, config, depth+1); err != nil {
		return err
	}
	line := nodeLine(node, config, depth)
	if err := emit(w, config, depth, line); err != nil {
		tracer().Errorf("pretty print: %s", err.Error())
		return err
	}
	return printNode(node.Right(), w, config, depth+1)
}

func nodeLine[T any](node *avl.Node[T], config *Config, depth int) string {
	line := fmt.Sprintf("%*s%v  (h=%d |%d|)", depth*2, "", node.Value(),
		node.Height(), node.SubtreeSize())
	if config.LineWidth > 0 && len(line) > config.LineWidth {
		line = line[:config.LineWidth-1] + "…"
	}
	return line
}

func emit(w io.Writer, config *Config, depth int, line string) error {
	if len(config.Palette) > 0 {
		c := config.Palette[depth%len(config.Palette)]
		if _, err := c.Fprintln(w, line); err != nil {
			return err
		}
		return nil
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
