package cluster

import "math"

// Tree glyphs. Each display row gets a fixed-width rune buffer; internal
// nodes draw a top bracket at the first row of their span, a bottom bracket
// at the last, and a vertical bar in between. A final pass draws horizontal
// leaders from the left edge up to the first connecting glyph.
const (
	glyphHorizontal = '─'
	glyphVertical   = '│'
	glyphTop        = '┬'
	glyphBottom     = '┘'
)

// maxTreeColumns caps the rendered tree width. Trees whose depth fits the
// cap get one column per depth level; deeper trees are compressed by
// square-root scaling of normalized depth, keeping splits near the trunk
// visually separated while deep splits crowd toward the edge.
const maxTreeColumns = 8

type nodeInfo struct {
	rowMin int // first display row of this subtree
	rowMax int // last display row of this subtree
	depth  int // 0 for leaves, 1 + max child depth for internal nodes
}

// RenderTree renders the dendrogram topology as one glyph string per
// display row, aligned with order. Returns the lines and their width.
func RenderTree(d Dendrogram, n int, order []int) ([]string, int) {
	if len(d.Steps) == 0 || n <= 1 {
		lines := make([]string, n)
		for i := range lines {
			lines[i] = string(glyphHorizontal)
		}
		return lines, 1
	}

	rowOf := make([]int, n)
	for row, orig := range order {
		rowOf[orig] = row
	}

	// Node ids: 0..n leaves, n..2n-1 internal in merge order.
	info := make([]nodeInfo, 2*n-1)
	for orig := 0; orig < n; orig++ {
		row := rowOf[orig]
		info[orig] = nodeInfo{rowMin: row, rowMax: row}
	}
	for i, step := range d.Steps {
		c1, c2 := info[step.Cluster1], info[step.Cluster2]
		info[n+i] = nodeInfo{
			rowMin: min(c1.rowMin, c2.rowMin),
			rowMax: max(c1.rowMax, c2.rowMax),
			depth:  max(c1.depth, c2.depth) + 1,
		}
	}

	maxDepth := 0
	for _, ni := range info {
		if ni.depth > maxDepth {
			maxDepth = ni.depth
		}
	}

	treeWidth := maxDepth
	if treeWidth > maxTreeColumns {
		treeWidth = maxTreeColumns
	}

	columns := make([]int, 2*n-1)
	for id := n; id < 2*n-1; id++ {
		columns[id] = columnFor(info[id].depth, maxDepth, treeWidth)
	}

	// Draw internal nodes shallow-first so deeper branch points win when
	// compression maps several depths onto one column.
	internal := make([]int, 0, n-1)
	for id := n; id < 2*n-1; id++ {
		internal = append(internal, id)
	}
	sortByDepthThenRow(internal, info)

	lines := make([]string, 0, n)
	for row := 0; row < n; row++ {
		buf := make([]rune, treeWidth)
		for i := range buf {
			buf[i] = ' '
		}

		for _, id := range internal {
			ni := info[id]
			if row < ni.rowMin || row > ni.rowMax {
				continue
			}
			col := columns[id]
			switch {
			case row == ni.rowMin:
				buf[col] = glyphTop
			case row == ni.rowMax:
				buf[col] = glyphBottom
			default:
				buf[col] = glyphVertical
			}
		}

		// Leader fill: draw ─ through blanks while in a horizontal run,
		// stop at │ or ┘, resume after ┬.
		fill := true
		for i, ch := range buf {
			switch {
			case ch == ' ' && fill:
				buf[i] = glyphHorizontal
			case ch == glyphVertical || ch == glyphBottom:
				fill = false
			case ch == glyphTop:
				fill = true
			}
		}

		lines = append(lines, string(buf))
	}

	return lines, treeWidth
}

// columnFor maps a node depth to a tree column. Depths within the cap map
// directly (depth 1 -> column 0); beyond the cap, normalized depth is
// square-root scaled onto the available width.
func columnFor(depth, maxDepth, treeWidth int) int {
	if maxDepth <= maxTreeColumns {
		return depth - 1
	}
	norm := float64(depth-1) / float64(maxDepth-1)
	col := int(math.Round(math.Sqrt(norm) * float64(treeWidth-1)))
	if col >= treeWidth {
		col = treeWidth - 1
	}
	return col
}

func sortByDepthThenRow(ids []int, info []nodeInfo) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0; j-- {
			a, b := info[ids[j-1]], info[ids[j]]
			if a.depth < b.depth || (a.depth == b.depth && a.rowMin <= b.rowMin) {
				break
			}
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
