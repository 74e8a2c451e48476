package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/stholm/stholm/pkg/config"
	"github.com/stholm/stholm/pkg/structure"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Mutation & Tree Styles
// =============================================================================

// mutationStyles colors residues by their compensatory classification.
// Indexed by structure.Change.
var mutationStyles = map[structure.Change]lipgloss.Style{
	structure.Unchanged:          lipgloss.NewStyle().Foreground(colorGray),
	structure.SingleCompatible:   lipgloss.NewStyle().Foreground(colorCyan),
	structure.DoubleCompatible:   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	structure.SingleIncompatible: lipgloss.NewStyle().Foreground(colorYellow),
	structure.DoubleIncompatible: lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	structure.InvolvesGap:        lipgloss.NewStyle().Foreground(colorDim),
	structure.Unpaired:           lipgloss.NewStyle().Foreground(colorWhite),
}

// styleTree colors the dendrogram gutter.
var styleTree = lipgloss.NewStyle().Foreground(colorDim)

// applyTheme overrides the built-in palette with configured colors.
// Empty fields keep their defaults.
func applyTheme(t config.Theme) {
	set := func(ch structure.Change, c string) {
		if c != "" {
			s := mutationStyles[ch]
			mutationStyles[ch] = s.Foreground(lipgloss.Color(c))
		}
	}
	set(structure.Unchanged, t.Unchanged)
	set(structure.SingleCompatible, t.SingleCompatible)
	set(structure.DoubleCompatible, t.DoubleCompatible)
	set(structure.SingleIncompatible, t.SingleIncompatible)
	set(structure.DoubleIncompatible, t.DoubleIncompatible)
	set(structure.InvolvesGap, t.Gap)
	if t.Tree != "" {
		styleTree = styleTree.Foreground(lipgloss.Color(t.Tree))
	}
}

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
