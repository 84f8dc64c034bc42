package perm

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT digraph of the cycle structure of p, a
// permutation of 0..n-1.
//
// Every element is a node and every position i gets an edge i -> p[i].
// Each cycle is wrapped in its own cluster so the layout keeps cycles apart;
// fixed points are drawn with a dashed outline and a self-loop.
//
// If labels[i] exists, element i is shown as labels[i]; otherwise its index
// is used. Pass nil for numeric labels. The labels slice is not modified.
func ToDOT(p []int, labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Permutation {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n\n")

	for ci, cycle := range Cycles(p) {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", ci)
		buf.WriteString("    style=invis;\n")
		for _, v := range cycle {
			style := ""
			if len(cycle) == 1 {
				style = ", style=\"filled,dashed\""
			}
			fmt.Fprintf(&buf, "    n%d [label=%q%s];\n", v, nodeLabel(v, labels), style)
		}
		for _, v := range cycle {
			fmt.Fprintf(&buf, "    n%d -> n%d;\n", v, p[v])
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(i int, labels []string) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i)
}

// RenderSVG renders the cycle diagram of p as an SVG document.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it. Errors are returned if Graphviz cannot initialize, the DOT is
// malformed, or rendering fails; all are wrapped with %w.
func RenderSVG(ctx context.Context, p []int, labels []string) ([]byte, error) {
	dot := ToDOT(p, labels)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
