package bayesnet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the net.
//
// Each key becomes a node and each conditional contributes an edge from
// every parent to every frontal key. Frontal keys of a multi-frontal
// conditional are grouped in a cluster so cliques stand out.
//
// label formats a key for display; pass nil to use fmt.Sprint.
func (n *Net[K]) ToDOT(label func(K) string) string {
	if label == nil {
		label = func(k K) string { return fmt.Sprint(k) }
	}

	keys := n.Keys()
	ids := make(map[K]string, len(keys))
	for i, k := range keys {
		ids[k] = fmt.Sprintf("k%d", i)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph BayesNet {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=ellipse, style=filled, fillcolor=white];\n\n")

	for _, k := range keys {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", ids[k], label(k))
	}

	for i, c := range n.distinct() {
		if c.NrFrontals() > 1 {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n    style=rounded;\n    label=\"%d\";\n", i, i)
			for f := range c.Frontals().Values() {
				fmt.Fprintf(&buf, "    %s;\n", ids[f])
			}
			buf.WriteString("  }\n")
		}
		for p := range c.Parents().Values() {
			for f := range c.Frontals().Values() {
				fmt.Fprintf(&buf, "  %s -> %s;\n", ids[p], ids[f])
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the net as an SVG image via ToDOT and Graphviz.
//
// All errors are wrapped with context using fmt.Errorf with %w.
func (n *Net[K]) RenderSVG(ctx context.Context, label func(K) string) ([]byte, error) {
	dot := n.ToDOT(label)

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
