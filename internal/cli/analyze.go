package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stholm/stholm/pkg/config"
	"github.com/stholm/stholm/pkg/errors"
	"github.com/stholm/stholm/pkg/stockholm"
	"github.com/stholm/stholm/pkg/structure"
)

// reportClasses is the display order for mutation counts. Unpaired columns
// are left out of the per-sequence summary; they dominate every alignment
// and carry no signal.
var reportClasses = []structure.Change{
	structure.DoubleCompatible,
	structure.SingleCompatible,
	structure.SingleIncompatible,
	structure.DoubleIncompatible,
	structure.InvolvesGap,
	structure.Unchanged,
}

// newAnalyzeCmd creates the analyze command. It classifies every paired
// column of every sequence against a reference and prints per-sequence
// mutation counts.
func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	var reference string

	cmd := &cobra.Command{
		Use:   "analyze <alignment.sto>",
		Short: "Classify mutations against a reference sequence",
		Long: `Classify each paired column of each sequence relative to a reference
sequence, using the SS_cons annotation for pairing. Compensatory (double
compatible) changes conserve the structure; incompatible changes break it.

Examples:
  stholm analyze rf00001.sto                  # Reference is the first sequence
  stholm analyze rf00001.sto -r seq7/1-120    # Explicit reference`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAnalyze(c, cfg, args[0], reference)
		},
	}

	cmd.Flags().StringVarP(&reference, "reference", "r", "", "reference sequence ID (default: first sequence)")

	return cmd
}

func runAnalyze(c *cobra.Command, cfg *config.Config, path, reference string) error {
	logger := loggerFromContext(c.Context())

	a, err := stockholm.ParseFile(path)
	if err != nil {
		return err
	}
	ss, ok := a.SSCons()
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "alignment has no SS_cons annotation")
	}

	cache := structure.NewCache()
	if err := cache.Update(ss); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStructure, err, "bad SS_cons in %s", path)
	}
	logger.Debugf("Structure has %d pairs in %d helices", len(cache.Pairs()), cache.NumHelices())

	refRow := 0
	if reference != "" {
		refRow = -1
		for i, seq := range a.Sequences {
			if seq.ID == reference {
				refRow = i
				break
			}
		}
		if refRow < 0 {
			return errors.New(errors.ErrCodeSequenceNotFound, "no sequence %q in %s", reference, path)
		}
	}
	if a.NumSequences() == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "alignment has no sequences")
	}
	ref := a.Sequences[refRow].Bytes()
	gaps := cfg.Gaps()

	printInfo("reference: %s", StyleHighlight.Render(a.Sequences[refRow].ID))
	for i, seq := range a.Sequences {
		if i == refRow {
			continue
		}
		counts := classifyRow(ref, seq.Bytes(), cache, gaps)
		printSequenceReport(seq.ID, counts)
	}
	return nil
}

// classifyRow tallies mutation classes over every column of query.
func classifyRow(ref, query []byte, cache *structure.Cache, gaps structure.GapSet) map[structure.Change]int {
	counts := make(map[structure.Change]int)
	for col := range query {
		counts[structure.AnalyzeCompensatory(ref, query, col, cache, gaps)]++
	}
	return counts
}

// printSequenceReport prints one line per sequence with the non-zero class
// counts in fixed order.
func printSequenceReport(id string, counts map[structure.Change]int) {
	line := StyleValue.Render(id)
	for _, class := range reportClasses {
		n := counts[class]
		if n == 0 {
			continue
		}
		line += "  " + mutationStyles[class].Render(fmt.Sprintf("%s:%d", class, n))
	}
	fmt.Println(line)
}
