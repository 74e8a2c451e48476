package cluster

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a dendrogram to Graphviz DOT format for node-link
// visualization. Leaves are labeled with the corresponding entry of labels
// (falling back to the leaf index when labels is short); internal nodes
// show the merge dissimilarity. The resulting DOT string can be rendered
// with [RenderSVG].
func ToDOT(d Dendrogram, n int, labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dendrogram {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontsize=12];\n")
	buf.WriteString("\n")

	for leaf := 0; leaf < n; leaf++ {
		label := fmt.Sprintf("%d", leaf)
		if leaf < len(labels) && labels[leaf] != "" {
			label = labels[leaf]
		}
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", leaf, label)
	}

	buf.WriteString("\n")
	for i, step := range d.Steps {
		id := n + i
		fmt.Fprintf(&buf, "  n%d [label=\"d=%.1f\", shape=ellipse];\n", id, step.Dissimilarity)
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, step.Cluster1)
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, step.Cluster2)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
