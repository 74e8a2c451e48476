// Package cluster groups alignment sequences by similarity and renders the
// resulting merge tree as per-row terminal glyphs.
//
// The pipeline is: gap-aware Hamming distances over all sequence pairs
// (condensed matrix), UPGMA average-linkage agglomeration into a
// [Dendrogram], depth-first leaf ordering so that sequences merged earliest
// end up adjacent, and an ASCII rendering of the tree topology with one
// glyph string per display row.
//
// Duplicate-heavy alignments can avoid the O(n²) distance cost by
// clustering one representative per distinct sequence content and expanding
// the result afterwards; see [WithCollapse].
//
// All functions are pure and synchronous. Clustering is meant to run on an
// explicit user action, not per frame.
package cluster

import "github.com/stholm/stholm/pkg/structure"

// Result is the outcome of a clustering run.
type Result struct {
	// Order holds sequence indices in dendrogram order; a permutation of
	// 0..n. Similar sequences are adjacent.
	Order []int
	// TreeLines holds one glyph string per display row, aligned with Order.
	TreeLines []string
	// TreeWidth is the width of TreeLines in glyphs.
	TreeWidth int
	// GroupOrder maps collapsed display rows to collapse-group indices.
	// Nil unless the run went through WithCollapse.
	GroupOrder []int
	// CollapsedTreeLines holds one glyph string per collapse group.
	// Nil unless the run went through WithCollapse.
	CollapsedTreeLines []string
}

// Sequences clusters and returns only the leaf order.
func Sequences(seqs [][]byte, gaps structure.GapSet) []int {
	return WithTree(seqs, gaps).Order
}

// WithTree clusters sequences by UPGMA over gap-aware Hamming distances and
// renders the dendrogram. Degenerate inputs short-circuit: n == 0 yields an
// empty result, n == 1 an identity order with a one-glyph placeholder tree.
func WithTree(seqs [][]byte, gaps structure.GapSet) Result {
	n := len(seqs)
	if n <= 1 {
		return trivialResult(n)
	}

	condensed := DistanceMatrix(seqs, gaps)
	dend := Linkage(condensed, n)
	order := dend.Order(n)
	lines, width := RenderTree(dend, n, order)

	return Result{Order: order, TreeLines: lines, TreeWidth: width}
}

// trivialResult covers n <= 1 without a linkage call.
func trivialResult(n int) Result {
	if n == 0 {
		return Result{Order: []int{}, TreeLines: []string{}}
	}
	return Result{Order: []int{0}, TreeLines: []string{"─"}, TreeWidth: 1}
}
