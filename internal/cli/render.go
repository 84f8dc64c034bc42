package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/lehmer"
	"github.com/matzehuels/lehmer/pkg/perm"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; empty writes to stdout
	dot    bool   // emit DOT source instead of SVG
	labels string // comma-separated element labels
}

// renderCommand creates the render command for drawing cycle diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <permutation>",
		Short: "Draw the cycle structure of a permutation",
		Long: `Draw the cycle structure of a permutation as an SVG diagram using Graphviz.

Every element i gets an arrow to p[i]; each cycle is laid out as its own
group and fixed points are drawn dashed. Offset permutations are shifted to
start at 0 first.`,
		Example: `  lehmer render 3,1,0,2 -o cycles.svg
  lehmer render 1,2,0 --dot | dot -Tpng > cycles.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := perm.Parse(args[0])
			if err != nil {
				return err
			}
			if err := lehmer.Validate(p); err != nil {
				return err
			}
			p = perm.Normalize(p)

			labels := parseLabels(opts.labels)
			if err := lerrors.ValidateLabels(labels, len(p)); err != nil {
				return err
			}

			sw := startStopwatch(cmd.Context())

			var data []byte
			if opts.dot {
				data = []byte(perm.ToDOT(p, labels))
			} else {
				data, err = perm.RenderSVG(cmd.Context(), p, labels)
				if err != nil {
					return err
				}
			}

			if opts.output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			sw.done("Rendered cycle diagram", "cycles", len(perm.Cycles(p)), "file", opts.output)
			printFile(opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "emit Graphviz DOT instead of SVG")
	cmd.Flags().StringVar(&opts.labels, "labels", "", "comma-separated element labels")
	return cmd
}
