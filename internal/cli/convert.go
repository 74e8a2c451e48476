package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stholm/stholm/pkg/errors"
	"github.com/stholm/stholm/pkg/stockholm"
)

// newConvertCmd creates the convert command for alphabet rewrites.
func newConvertCmd() *cobra.Command {
	var toRNA, toDNA, upper, lower bool
	var output string

	cmd := &cobra.Command{
		Use:   "convert <alignment.sto>",
		Short: "Rewrite sequence alphabets (T/U, case)",
		Long: `Rewrite the sequence alphabet of an alignment: switch between DNA (T) and
RNA (U), or normalize letter case. Writes to stdout unless -o is given.

Examples:
  stholm convert rf00001.sto --rna -o out.sto   # T -> U
  stholm convert rf00001.sto --dna --upper      # U -> T, uppercase, stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if toRNA && toDNA {
				return errors.New(errors.ErrCodeInvalidInput, "--rna and --dna are mutually exclusive")
			}
			if upper && lower {
				return errors.New(errors.ErrCodeInvalidInput, "--upper and --lower are mutually exclusive")
			}

			a, err := stockholm.ParseFile(args[0])
			if err != nil {
				return err
			}
			if toRNA {
				a.ConvertTU()
			}
			if toDNA {
				a.ConvertUT()
			}
			for i := range a.Sequences {
				if upper {
					a.Sequences[i].MakeUpper()
				}
				if lower {
					a.Sequences[i].MakeLower()
				}
			}

			if output == "" {
				return stockholm.Write(a, os.Stdout)
			}
			if err := stockholm.WriteFile(a, output); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toRNA, "rna", false, "convert T to U")
	cmd.Flags().BoolVar(&toDNA, "dna", false, "convert U to T")
	cmd.Flags().BoolVar(&upper, "upper", false, "uppercase all residues")
	cmd.Flags().BoolVar(&lower, "lower", false, "lowercase all residues")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
