package cluster

import (
	"strings"
	"testing"

	"github.com/stholm/stholm/pkg/structure"
)

func TestWithTreeBalancedFour(t *testing.T) {
	seqs := [][]byte{
		[]byte("AAAA"),
		[]byte("AAAG"),
		[]byte("UUUU"),
		[]byte("UUUG"),
	}
	res := WithTree(seqs, structure.DefaultGaps())

	if len(res.TreeLines) != 4 {
		t.Fatalf("tree lines = %d, want 4", len(res.TreeLines))
	}
	if res.TreeWidth != 2 {
		t.Errorf("tree width = %d, want 2", res.TreeWidth)
	}

	want := []string{"┬┬", "┘│", "┬│", "┘┘"}
	for i, line := range res.TreeLines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestWithTreeGlyphAlphabet(t *testing.T) {
	seqs := [][]byte{
		[]byte("AAAAAAAA"),
		[]byte("AAAAAAAU"),
		[]byte("AAAAAAUU"),
		[]byte("AAAAAUUU"),
		[]byte("AAAAUUUU"),
		[]byte("AAAUUUUU"),
		[]byte("GGGGGGGG"),
	}
	res := WithTree(seqs, structure.DefaultGaps())

	for _, line := range res.TreeLines {
		if len([]rune(line)) != res.TreeWidth {
			t.Errorf("line %q width = %d, want %d", line, len([]rune(line)), res.TreeWidth)
		}
		for _, r := range line {
			if !strings.ContainsRune("─┬┘│ ", r) {
				t.Errorf("line %q contains unexpected glyph %q", line, r)
			}
		}
	}
}

func TestWithTreeAdjacentDuplicates(t *testing.T) {
	seqs := [][]byte{
		[]byte("GGGG"),
		[]byte("ACGU"),
		[]byte("UUUU"),
		[]byte("ACGU"),
	}
	res := WithTree(seqs, structure.DefaultGaps())

	pos := make(map[int]int, len(res.Order))
	for p, row := range res.Order {
		pos[row] = p
	}
	if diff := pos[1] - pos[3]; diff != 1 && diff != -1 {
		t.Errorf("duplicate rows 1 and 3 not adjacent in order %v", res.Order)
	}
}

func TestWithTreeDegenerate(t *testing.T) {
	gaps := structure.DefaultGaps()

	empty := WithTree(nil, gaps)
	if len(empty.Order) != 0 || len(empty.TreeLines) != 0 {
		t.Errorf("n=0: got %+v, want empty result", empty)
	}

	single := WithTree([][]byte{[]byte("ACGU")}, gaps)
	if len(single.Order) != 1 || single.Order[0] != 0 {
		t.Errorf("n=1: order = %v, want [0]", single.Order)
	}
	if len(single.TreeLines) != 1 || single.TreeLines[0] != "─" {
		t.Errorf("n=1: tree = %v, want [─]", single.TreeLines)
	}
	if single.TreeWidth != 1 {
		t.Errorf("n=1: width = %d, want 1", single.TreeWidth)
	}
}

func TestDeepTreeCompression(t *testing.T) {
	// Points at exponentially growing positions merge chain-wise into a
	// caterpillar dendrogram of depth n-1, exceeding the column cap and
	// forcing sqrt compression.
	n := 12
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = float64(int(1)<<i) - 1
	}
	var condensed []float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			condensed = append(condensed, pos[j]-pos[i])
		}
	}

	d := Linkage(condensed, n)
	order := d.Order(n)
	lines, width := RenderTree(d, n, order)

	if width != maxTreeColumns {
		t.Errorf("width = %d, want cap %d", width, maxTreeColumns)
	}
	if len(lines) != n {
		t.Fatalf("lines = %d, want %d", len(lines), n)
	}
	for _, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %q not padded to width %d", line, width)
		}
		for _, r := range line {
			if !strings.ContainsRune("─┬┘│ ", r) {
				t.Errorf("line %q contains unexpected glyph %q", line, r)
			}
		}
	}
}

func TestColumnFor(t *testing.T) {
	// Under the cap: direct depth-1 assignment.
	for depth := 1; depth <= maxTreeColumns; depth++ {
		if got := columnFor(depth, maxTreeColumns, maxTreeColumns); got != depth-1 {
			t.Errorf("columnFor(%d) = %d, want %d", depth, got, depth-1)
		}
	}

	// Over the cap: monotone, within bounds, trunk stays at column 0 and
	// the deepest node lands on the last column.
	maxDepth := 20
	prev := -1
	for depth := 1; depth <= maxDepth; depth++ {
		col := columnFor(depth, maxDepth, maxTreeColumns)
		if col < 0 || col >= maxTreeColumns {
			t.Fatalf("columnFor(%d) = %d out of range", depth, col)
		}
		if col < prev {
			t.Errorf("columnFor not monotone at depth %d", depth)
		}
		prev = col
	}
	if columnFor(1, maxDepth, maxTreeColumns) != 0 {
		t.Error("shallowest split should stay at column 0")
	}
	if columnFor(maxDepth, maxDepth, maxTreeColumns) != maxTreeColumns-1 {
		t.Error("deepest split should land on the last column")
	}
}
