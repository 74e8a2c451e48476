package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stholm/stholm/pkg/config"
	"github.com/stholm/stholm/pkg/stockholm"
)

// newViewCmd creates the view command, an interactive terminal browser for
// an alignment.
func newViewCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <alignment.sto>",
		Short: "Browse an alignment in the terminal",
		Long: `Open an alignment in an interactive terminal viewer. Residues at paired
columns are colored by their mutation class relative to the reference (the
first sequence).

Keys:
  arrows/hjkl  scroll
  c            toggle similarity ordering (cluster)
  d            toggle duplicate collapsing
  q            quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := stockholm.ParseFile(args[0])
			if err != nil {
				return err
			}
			model := NewAlignmentModel(a, cfg)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	return cmd
}
