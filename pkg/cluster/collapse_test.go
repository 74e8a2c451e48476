package cluster

import (
	"sort"
	"testing"

	"github.com/stholm/stholm/pkg/structure"
)

func TestComputeGroups(t *testing.T) {
	seqs := [][]byte{
		[]byte("AAAA"),
		[]byte("UUUU"),
		[]byte("AAAA"),
		[]byte("GGGG"),
		[]byte("AAAA"),
	}
	groups := ComputeGroups(seqs)

	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Representative != 0 || len(groups[0].Members) != 3 {
		t.Errorf("group 0 = %+v, want rep 0 with 3 members", groups[0])
	}
	wantMembers := []int{0, 2, 4}
	for i, m := range groups[0].Members {
		if m != wantMembers[i] {
			t.Errorf("group 0 members = %v, want %v", groups[0].Members, wantMembers)
			break
		}
	}
	if groups[1].Representative != 1 || groups[2].Representative != 3 {
		t.Errorf("representatives = %d,%d, want 1,3", groups[1].Representative, groups[2].Representative)
	}
}

func TestWithCollapseExpandsGroups(t *testing.T) {
	seqs := [][]byte{
		[]byte("AAAA"), // group 0
		[]byte("UUUU"), // group 1
		[]byte("AAAA"), // group 0
		[]byte("UUUG"), // group 2
		[]byte("AAAA"), // group 0
	}
	gaps := structure.DefaultGaps()
	groups := ComputeGroups(seqs)
	res := WithCollapse(seqs, gaps, groups)

	// Order is a permutation of all original rows.
	if len(res.Order) != len(seqs) {
		t.Fatalf("order length = %d, want %d", len(res.Order), len(seqs))
	}
	sorted := append([]int(nil), res.Order...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("order is not a permutation: %v", res.Order)
		}
	}

	// Group members stay contiguous and keep original intra-group order.
	wantBlock := []int{0, 2, 4}
	for start := 0; start < len(res.Order); start++ {
		if res.Order[start] != 0 {
			continue
		}
		for i, want := range wantBlock {
			if res.Order[start+i] != want {
				t.Errorf("group 0 block = %v at %d, want %v", res.Order[start:start+3], start, wantBlock)
			}
		}
		break
	}

	// Members of one group share a tree line.
	lineOf := make(map[int]string)
	for i, row := range res.Order {
		lineOf[row] = res.TreeLines[i]
	}
	if lineOf[0] != lineOf[2] || lineOf[0] != lineOf[4] {
		t.Error("duplicate rows do not share a tree line")
	}

	// Collapsed view: one line and one group index per group.
	if len(res.CollapsedTreeLines) != len(groups) {
		t.Errorf("collapsed lines = %d, want %d", len(res.CollapsedTreeLines), len(groups))
	}
	if len(res.GroupOrder) != len(groups) {
		t.Errorf("group order = %d entries, want %d", len(res.GroupOrder), len(groups))
	}
	seen := make(map[int]bool)
	for _, g := range res.GroupOrder {
		if g < 0 || g >= len(groups) || seen[g] {
			t.Fatalf("group order %v is not a permutation over groups", res.GroupOrder)
		}
		seen[g] = true
	}
}

func TestWithCollapseAllUnique(t *testing.T) {
	seqs := [][]byte{
		[]byte("AAAA"),
		[]byte("AAAG"),
		[]byte("UUUU"),
		[]byte("UUUG"),
	}
	gaps := structure.DefaultGaps()
	groups := ComputeGroups(seqs)
	if len(groups) != len(seqs) {
		t.Fatal("fixture should have no duplicates")
	}

	plain := WithTree(seqs, gaps)
	collapsed := WithCollapse(seqs, gaps, groups)

	// Same order as a set.
	a := append([]int(nil), plain.Order...)
	b := append([]int(nil), collapsed.Order...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order sets differ: %v vs %v", plain.Order, collapsed.Order)
		}
	}

	// Group view present: each leaf maps back to its own group.
	if len(collapsed.GroupOrder) != len(seqs) {
		t.Errorf("group order length = %d, want %d", len(collapsed.GroupOrder), len(seqs))
	}
	for i, row := range collapsed.Order {
		if collapsed.GroupOrder[i] != row {
			// With all-unique input, group index equals first-occurrence
			// row index.
			t.Errorf("GroupOrder[%d] = %d, want %d", i, collapsed.GroupOrder[i], row)
		}
	}
	if len(collapsed.CollapsedTreeLines) != len(seqs) {
		t.Errorf("collapsed lines = %d, want %d", len(collapsed.CollapsedTreeLines), len(seqs))
	}
}

func TestWithCollapseSingleGroup(t *testing.T) {
	seqs := [][]byte{
		[]byte("ACGU"),
		[]byte("ACGU"),
		[]byte("ACGU"),
	}
	gaps := structure.DefaultGaps()
	groups := ComputeGroups(seqs)
	res := WithCollapse(seqs, gaps, groups)

	for i, row := range res.Order {
		if row != i {
			t.Errorf("order = %v, want original order", res.Order)
			break
		}
	}
	if len(res.TreeLines) != 3 || res.TreeLines[0] != "─" {
		t.Errorf("tree lines = %v, want placeholder per row", res.TreeLines)
	}
	if len(res.GroupOrder) != 1 || res.GroupOrder[0] != 0 {
		t.Errorf("group order = %v, want [0]", res.GroupOrder)
	}
	if len(res.CollapsedTreeLines) != 1 || res.CollapsedTreeLines[0] != "─" {
		t.Errorf("collapsed lines = %v, want one placeholder", res.CollapsedTreeLines)
	}
}

func TestWithCollapseDegenerate(t *testing.T) {
	gaps := structure.DefaultGaps()

	res := WithCollapse(nil, gaps, nil)
	if len(res.Order) != 0 {
		t.Errorf("n=0: order = %v, want empty", res.Order)
	}

	seqs := [][]byte{[]byte("ACGU")}
	res = WithCollapse(seqs, gaps, ComputeGroups(seqs))
	if len(res.Order) != 1 || res.Order[0] != 0 {
		t.Errorf("n=1: order = %v, want [0]", res.Order)
	}
	if len(res.TreeLines) != 1 || res.TreeLines[0] != "─" {
		t.Errorf("n=1: tree = %v, want [─]", res.TreeLines)
	}
}
