// Package debugdot renders a suftree.Tree as a GraphViz dot digraph or as
// an ANSI-colored indented terminal dump, for eyeballing small trees while
// debugging. It is deliberately kept out of the core package.
package debugdot

import (
	"fmt"
	"io"

	"github.com/arborists/suftree"
	"github.com/arborists/suftree/internal/ansi"
)

// Write renders t as a "strict digraph" in GraphViz dot format: internal
// nodes in red, leaves in green, parent edges unlabeled, suffix links as
// dashed blue edges.
func Write[S comparable, ID comparable](w io.Writer, t *suftree.Tree[S, ID]) error {
	if _, err := fmt.Fprintln(w, "strict digraph G {"); err != nil {
		return err
	}

	names := make(map[*suftree.Node[S, ID]]string)
	next := 0
	name := func(n *suftree.Node[S, ID]) string {
		if s, ok := names[n]; ok {
			return s
		}
		s := fmt.Sprintf("n%d", next)
		next++
		names[n] = s
		return s
	}

	for n := range t.PreOrder() {
		nn := name(n)
		color := "red"
		if n.IsLeaf() {
			color = "green"
		}
		if _, err := fmt.Fprintf(w, "  %q [color=%s, label=%q];\n", nn, color, label(n)); err != nil {
			return err
		}
		if !n.IsRoot() {
			if _, err := fmt.Fprintf(w, "  %q -> %q;\n", name(n.Parent()), nn); err != nil {
				return err
			}
		}
		if sl := n.SuffixLink(); sl != nil {
			if _, err := fmt.Fprintf(w, "  %q -> %q [color=blue, style=dashed, constraint=false];\n", nn, name(sl)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// Pretty writes an indented, ANSI-colored tree dump to w, useful for
// eyeballing small trees in a terminal without a GraphViz renderer.
func Pretty[S comparable, ID comparable](w io.Writer, t *suftree.Tree[S, ID]) {
	prettyNode(w, t.Root(), 0)
}

func prettyNode[S comparable, ID comparable](w io.Writer, n *suftree.Node[S, ID], depth int) {
	color := ansi.FgRed
	kind := "internal"
	if n.IsLeaf() {
		color = ansi.FgGreen
		kind = "leaf"
	}
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintf(w, "%s%s%v%s (%s, depth=%d)\n", color, ansi.Bold, n.Span().Symbols(), ansi.Reset, kind, n.StringDepth())
	for c := range n.Children() {
		prettyNode(w, c, depth+1)
	}
}

func label[S comparable, ID comparable](n *suftree.Node[S, ID]) string {
	return fmt.Sprintf("%v", n.Span().Symbols())
}
