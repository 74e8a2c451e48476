package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stholm/stholm/pkg/errors"
	"github.com/stholm/stholm/pkg/stockholm"
	"github.com/stholm/stholm/pkg/structure"
)

// newStructureCmd creates the structure command. It parses the consensus
// secondary structure of an alignment (or a raw dot-bracket string) and
// reports its base pairs grouped by helix.
func newStructureCmd() *cobra.Command {
	var raw string
	var pairs bool

	cmd := &cobra.Command{
		Use:   "structure [alignment.sto]",
		Short: "Report base pairs and helices of the consensus structure",
		Long: `Parse the SS_cons annotation of a Stockholm alignment and report its base
pairs and helices. Unbalanced brackets are reported with their column.

Examples:
  stholm structure rf00001.sto          # Summary of SS_cons
  stholm structure rf00001.sto --pairs  # Per-pair listing
  stholm structure -s "<<<..>>>"        # Parse a raw dot-bracket string`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ss, err := structureInput(raw, args)
			if err != nil {
				return err
			}
			return runStructure(ss, pairs)
		},
	}

	cmd.Flags().StringVarP(&raw, "string", "s", "", "parse this dot-bracket string instead of a file")
	cmd.Flags().BoolVar(&pairs, "pairs", false, "list every base pair")

	return cmd
}

// structureInput resolves the dot-bracket source: the --string flag wins,
// otherwise the SS_cons line of the given alignment.
func structureInput(raw string, args []string) (string, error) {
	if raw != "" {
		return raw, nil
	}
	if len(args) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "provide an alignment file or --string")
	}
	a, err := stockholm.ParseFile(args[0])
	if err != nil {
		return "", err
	}
	ss, ok := a.SSCons()
	if !ok {
		return "", errors.New(errors.ErrCodeNotFound, "alignment has no SS_cons annotation")
	}
	return ss, nil
}

func runStructure(ss string, listPairs bool) error {
	parsed, err := structure.Parse(ss)
	if err != nil {
		var perr *structure.ParseError
		if stderrors.As(err, &perr) {
			printError("invalid structure: %s", perr)
			printDetail("%s", ss)
			printDetail("%*s", perr.Pos+1, "^")
		}
		return err
	}

	printKeyValue("columns", fmt.Sprintf("%d", len(ss)))
	printKeyValue("pairs", fmt.Sprintf("%d", len(parsed)))
	printKeyValue("helices", fmt.Sprintf("%d", structure.CountHelices(parsed)))

	if listPairs {
		helix := -1
		for _, p := range parsed {
			if p.Helix != helix {
				helix = p.Helix
				fmt.Println(StyleTitle.Render(fmt.Sprintf("helix %d", helix)))
			}
			printDetail("%d %s %d", p.Left, iconArrow, p.Right)
		}
	}
	return nil
}
