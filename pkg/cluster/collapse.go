package cluster

import "github.com/stholm/stholm/pkg/structure"

// Group collects rows with identical sequence content. Representative is
// the first occurrence; Members lists all rows in original order,
// Representative included.
type Group struct {
	Representative int
	Members        []int
}

// ComputeGroups partitions rows by exact sequence content, one group per
// distinct content in order of first occurrence. Row indices within a
// group keep their original order.
func ComputeGroups(seqs [][]byte) []Group {
	byContent := make(map[string]int)
	var groups []Group
	for row, seq := range seqs {
		key := string(seq)
		if gi, ok := byContent[key]; ok {
			groups[gi].Members = append(groups[gi].Members, row)
			continue
		}
		byContent[key] = len(groups)
		groups = append(groups, Group{Representative: row, Members: []int{row}})
	}
	return groups
}

// WithCollapse clusters pre-grouped sequences, paying the O(n²) distance
// cost only for distinct sequence contents. The expanded result orders
// every member of a group contiguously (original intra-group order) where
// its representative lands, replicating the representative's tree line
// across member rows. GroupOrder and CollapsedTreeLines describe the
// collapsed display, one entry per group.
func WithCollapse(seqs [][]byte, gaps structure.GapSet, groups []Group) Result {
	n := len(seqs)

	// No exploitable duplicates: delegate, then derive the group view for
	// uniform downstream handling.
	if len(groups) == n || n <= 1 {
		res := WithTree(seqs, gaps)
		groupOf := make([]int, n)
		for gi, g := range groups {
			for _, row := range g.Members {
				groupOf[row] = gi
			}
		}
		res.GroupOrder = make([]int, 0, len(res.Order))
		for _, row := range res.Order {
			res.GroupOrder = append(res.GroupOrder, groupOf[row])
		}
		res.CollapsedTreeLines = append([]string(nil), res.TreeLines...)
		return res
	}

	// Everything identical: original order, placeholder trees.
	if len(groups) == 1 {
		order := append([]int(nil), groups[0].Members...)
		lines := make([]string, n)
		for i := range lines {
			lines[i] = string(glyphHorizontal)
		}
		return Result{
			Order:              order,
			TreeLines:          lines,
			TreeWidth:          1,
			GroupOrder:         []int{0},
			CollapsedTreeLines: []string{string(glyphHorizontal)},
		}
	}

	reps := make([][]byte, len(groups))
	for gi, g := range groups {
		reps[gi] = seqs[g.Representative]
	}
	repResult := WithTree(reps, gaps)

	order := make([]int, 0, n)
	treeLines := make([]string, 0, n)
	collapsed := make([]string, 0, len(groups))
	for i, gi := range repResult.Order {
		line := repResult.TreeLines[i]
		collapsed = append(collapsed, line)
		for _, row := range groups[gi].Members {
			order = append(order, row)
			treeLines = append(treeLines, line)
		}
	}

	return Result{
		Order:              order,
		TreeLines:          treeLines,
		TreeWidth:          repResult.TreeWidth,
		GroupOrder:         repResult.Order,
		CollapsedTreeLines: collapsed,
	}
}
