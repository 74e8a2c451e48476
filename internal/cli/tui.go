package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stholm/stholm/pkg/cluster"
	"github.com/stholm/stholm/pkg/config"
	"github.com/stholm/stholm/pkg/stockholm"
	"github.com/stholm/stholm/pkg/structure"
)

// =============================================================================
// AlignmentModel - Interactive alignment browser
// =============================================================================

// displayRow is one visible row of the viewer: a sequence index, the tree
// gutter glyphs for that row, and the duplicate count when rows are
// collapsed (1 otherwise).
type displayRow struct {
	seq   int
	tree  string
	count int
}

// AlignmentModel is the bubbletea model for the alignment viewer.
type AlignmentModel struct {
	align *stockholm.Alignment
	gaps  structure.GapSet
	cache *structure.Cache
	ref   []byte

	clustered bool
	collapsed bool
	result    cluster.Result
	groups    []cluster.Group
	haveTree  bool

	rowOffset int
	colOffset int
	width     int
	height    int
}

// NewAlignmentModel creates a viewer over the alignment. The first sequence
// is the mutation reference; a missing or invalid SS_cons disables pairing
// colors rather than failing.
func NewAlignmentModel(a *stockholm.Alignment, cfg *config.Config) AlignmentModel {
	m := AlignmentModel{
		align:  a,
		gaps:   cfg.Gaps(),
		cache:  structure.NewCache(),
		width:  80,
		height: 24,
	}
	if a.NumSequences() > 0 {
		m.ref = a.Sequences[0].Bytes()
	}
	if ss, ok := a.SSCons(); ok {
		_ = m.cache.Update(ss)
	}
	return m
}

func (m AlignmentModel) Init() tea.Cmd {
	return nil
}

func (m AlignmentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.rowOffset > 0 {
				m.rowOffset--
			}
		case "down", "j":
			if m.rowOffset < len(m.rows())-1 {
				m.rowOffset++
			}
		case "left", "h":
			m.colOffset -= 10
			if m.colOffset < 0 {
				m.colOffset = 0
			}
		case "right", "l":
			if m.colOffset+10 < m.align.Width() {
				m.colOffset += 10
			}
		case "home":
			m.colOffset = 0
			m.rowOffset = 0
		case "c":
			m.clustered = !m.clustered
			if m.clustered && !m.haveTree {
				m.groups = cluster.ComputeGroups(m.align.SequenceBytes())
				m.result = cluster.WithCollapse(m.align.SequenceBytes(), m.gaps, m.groups)
				m.haveTree = true
			}
			m.rowOffset = 0
		case "d":
			m.collapsed = !m.collapsed
			m.rowOffset = 0
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// rows returns the current display rows, honoring the cluster and collapse
// toggles. Collapsing without clustering still groups duplicates, in
// original order.
func (m AlignmentModel) rows() []displayRow {
	n := m.align.NumSequences()

	if m.clustered && m.haveTree {
		if m.collapsed {
			rows := make([]displayRow, 0, len(m.result.GroupOrder))
			for i, gi := range m.result.GroupOrder {
				g := m.groups[gi]
				rows = append(rows, displayRow{
					seq:   g.Representative,
					tree:  m.result.CollapsedTreeLines[i],
					count: len(g.Members),
				})
			}
			return rows
		}
		rows := make([]displayRow, 0, n)
		for i, row := range m.result.Order {
			rows = append(rows, displayRow{seq: row, tree: m.result.TreeLines[i], count: 1})
		}
		return rows
	}

	if m.collapsed {
		groups := m.groups
		if groups == nil {
			groups = cluster.ComputeGroups(m.align.SequenceBytes())
		}
		rows := make([]displayRow, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, displayRow{seq: g.Representative, count: len(g.Members)})
		}
		return rows
	}

	rows := make([]displayRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, displayRow{seq: i, count: 1})
	}
	return rows
}

func (m AlignmentModel) View() string {
	var b strings.Builder

	rows := m.rows()
	idWidth := m.align.MaxIDLen()
	treeWidth := 0
	if m.clustered && m.haveTree {
		treeWidth = m.result.TreeWidth + 1
	}
	resWidth := m.width - treeWidth - idWidth - 1
	if resWidth < 1 {
		resWidth = 1
	}

	b.WriteString(StyleTitle.Render("stholm"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d sequences × %d columns", m.align.NumSequences(), m.align.Width())))
	b.WriteString("\n")

	if ss, ok := m.align.SSCons(); ok {
		b.WriteString(strings.Repeat(" ", treeWidth+idWidth+1))
		b.WriteString(StyleDim.Render(slice(ss, m.colOffset, resWidth)))
		b.WriteString("\n")
	}

	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	end := m.rowOffset + visible
	if end > len(rows) {
		end = len(rows)
	}

	for _, row := range rows[m.rowOffset:end] {
		seq := m.align.Sequences[row.seq]
		if treeWidth > 0 {
			b.WriteString(styleTree.Render(row.tree))
			b.WriteString(" ")
		}
		id := seq.ID
		if row.count > 1 {
			id = fmt.Sprintf("%s ×%d", id, row.count)
		}
		b.WriteString(StyleValue.Render(fmt.Sprintf("%-*s", idWidth, id)))
		b.WriteString(" ")
		b.WriteString(m.renderResidues(seq.Bytes(), resWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("[%d-%d/%d] col %d", m.rowOffset+1, end, len(rows), m.colOffset)
	if m.clustered {
		status += "  clustered"
	}
	if m.collapsed {
		status += "  collapsed"
	}
	b.WriteString(StyleDim.Render(status + "  ·  arrows scroll  c cluster  d collapse  q quit"))

	return b.String()
}

// renderResidues colors the visible residue window by mutation class,
// batching runs of the same class into one style call.
func (m AlignmentModel) renderResidues(query []byte, width int) string {
	var b strings.Builder
	end := m.colOffset + width
	if end > len(query) {
		end = len(query)
	}

	runStart := m.colOffset
	var runClass structure.Change = -1
	flush := func(upTo int) {
		if upTo > runStart {
			b.WriteString(mutationStyles[runClass].Render(string(query[runStart:upTo])))
		}
	}
	for col := m.colOffset; col < end; col++ {
		class := structure.AnalyzeCompensatory(m.ref, query, col, m.cache, m.gaps)
		if class != runClass {
			flush(col)
			runStart = col
			runClass = class
		}
	}
	flush(end)
	return b.String()
}

// slice returns up to width bytes of s starting at off, tolerating
// out-of-range offsets.
func slice(s string, off, width int) string {
	if off >= len(s) {
		return ""
	}
	end := off + width
	if end > len(s) {
		end = len(s)
	}
	return s[off:end]
}
