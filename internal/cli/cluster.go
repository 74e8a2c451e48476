package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stholm/stholm/pkg/cluster"
	"github.com/stholm/stholm/pkg/config"
	"github.com/stholm/stholm/pkg/stockholm"
	"github.com/stholm/stholm/pkg/structure"
)

// clusterOpts holds the command-line flags for the cluster command.
type clusterOpts struct {
	collapse  bool   // pre-group identical sequences
	collapsed bool   // print one row per duplicate group
	output    string // write reordered alignment here
	dotOut    string // write Graphviz DOT here
	svgOut    string // render dendrogram SVG here
}

// newClusterCmd creates the cluster command. It reorders an alignment so
// that similar sequences sit next to each other and prints the merge tree
// alongside the sequence IDs.
func newClusterCmd(cfg *config.Config) *cobra.Command {
	var opts clusterOpts

	cmd := &cobra.Command{
		Use:   "cluster <alignment.sto>",
		Short: "Reorder an alignment by sequence similarity",
		Long: `Cluster sequences with UPGMA over gap-aware Hamming distances and print
the dendrogram next to the reordered sequence IDs.

Examples:
  stholm cluster rf00001.sto                  # Print tree and order
  stholm cluster rf00001.sto -o sorted.sto    # Write reordered alignment
  stholm cluster rf00001.sto --collapsed      # One row per duplicate group
  stholm cluster rf00001.sto --svg tree.svg   # Render dendrogram as SVG`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			// Config is loaded after flag defaults are set; an unset flag
			// falls back to the configured default.
			if !c.Flags().Changed("collapse") {
				opts.collapse = cfg.CollapseIdentical
			}
			return runCluster(c, cfg, &opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.collapse, "collapse", true, "pre-group identical sequences before clustering")
	cmd.Flags().BoolVar(&opts.collapsed, "collapsed", false, "print one row per duplicate group")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the reordered alignment to this file")
	cmd.Flags().StringVar(&opts.dotOut, "dot", "", "write the dendrogram as Graphviz DOT to this file")
	cmd.Flags().StringVar(&opts.svgOut, "svg", "", "render the dendrogram as SVG to this file")

	return cmd
}

func runCluster(c *cobra.Command, cfg *config.Config, opts *clusterOpts, path string) error {
	logger := loggerFromContext(c.Context())
	gaps := cfg.Gaps()

	a, err := stockholm.ParseFile(path)
	if err != nil {
		return err
	}
	seqs := a.SequenceBytes()
	logger.Debugf("Parsed %d sequences of width %d", len(seqs), a.Width())

	prog := newProgress(logger)
	var res cluster.Result
	groups := cluster.ComputeGroups(seqs)
	if opts.collapse {
		res = cluster.WithCollapse(seqs, gaps, groups)
		logger.Debugf("Collapsed %d sequences into %d groups", len(seqs), len(groups))
	} else {
		res = cluster.WithTree(seqs, gaps)
	}
	prog.done(fmt.Sprintf("Clustered %d sequences", len(seqs)))

	if opts.collapsed && res.GroupOrder != nil {
		printCollapsedOrder(a, res, groups)
	} else {
		printOrder(a, res)
	}

	if opts.output != "" {
		if err := stockholm.WriteFile(reorder(a, res.Order), opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}

	if opts.dotOut != "" || opts.svgOut != "" {
		if err := exportDendrogram(seqs, gaps, a.SequenceIDs(), opts); err != nil {
			return err
		}
	}

	if opts.output == "" {
		printNextStep("Write the reordered alignment", fmt.Sprintf("stholm cluster %s -o sorted.sto", path))
	}
	return nil
}

// printOrder prints one line per sequence: tree gutter, then ID.
func printOrder(a *stockholm.Alignment, res cluster.Result) {
	for i, row := range res.Order {
		line := ""
		if i < len(res.TreeLines) {
			line = res.TreeLines[i]
		}
		fmt.Println(styleTree.Render(line) + " " + StyleValue.Render(a.Sequences[row].ID))
	}
}

// printCollapsedOrder prints one line per duplicate group, with the member
// count for groups larger than one.
func printCollapsedOrder(a *stockholm.Alignment, res cluster.Result, groups []cluster.Group) {
	for i, gi := range res.GroupOrder {
		line := ""
		if i < len(res.CollapsedTreeLines) {
			line = res.CollapsedTreeLines[i]
		}
		g := groups[gi]
		label := a.Sequences[g.Representative].ID
		if len(g.Members) > 1 {
			label += " " + StyleDim.Render(fmt.Sprintf("×%d", len(g.Members)))
		}
		fmt.Println(styleTree.Render(line) + " " + StyleValue.Render(label))
	}
}

// reorder returns a copy of the alignment with sequences permuted by order.
// Annotations are keyed by sequence ID and carry over unchanged.
func reorder(a *stockholm.Alignment, order []int) *stockholm.Alignment {
	out := stockholm.NewAlignment()
	out.FileAnnotations = a.FileAnnotations
	out.SequenceAnnotations = a.SequenceAnnotations
	out.ColumnAnnotations = a.ColumnAnnotations
	out.ResidueAnnotations = a.ResidueAnnotations
	out.Sequences = make([]*stockholm.Sequence, 0, len(order))
	for _, row := range order {
		out.Sequences = append(out.Sequences, a.Sequences[row])
	}
	return out
}

// exportDendrogram runs linkage once more on the full input and writes DOT
// and/or SVG artifacts.
func exportDendrogram(seqs [][]byte, gaps structure.GapSet, labels []string, opts *clusterOpts) error {
	n := len(seqs)
	if n < 2 {
		printWarning("nothing to export: fewer than two sequences")
		return nil
	}
	dend := cluster.Linkage(cluster.DistanceMatrix(seqs, gaps), n)
	dot := cluster.ToDOT(dend, n, labels)

	if opts.dotOut != "" {
		if err := os.WriteFile(opts.dotOut, []byte(dot), 0o644); err != nil {
			return err
		}
		printFile(opts.dotOut)
	}
	if opts.svgOut != "" {
		svg, err := cluster.RenderSVG(dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svgOut, svg, 0o644); err != nil {
			return err
		}
		printFile(opts.svgOut)
	}
	return nil
}
