package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lehmer/internal/server"
	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/lehmer"
	"github.com/matzehuels/lehmer/pkg/perm"
)

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	var showMeta bool

	cmd := &cobra.Command{
		Use:   "encode <permutation>",
		Short: "Print the Lehmer code of a permutation",
		Long: `Print the Lehmer code of a permutation: its 0-indexed rank among all
permutations of the same length in lexicographic order.

The permutation is a comma-separated list covering a contiguous range.
Lengths above 20 are encoded with arbitrary precision.`,
		Example: `  lehmer encode 3,1,0,2        # 20
  lehmer encode "[5 6 7]"       # 0
  lehmer encode -- -1,0,1       # 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := perm.Parse(args[0])
			if err != nil {
				return err
			}

			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Encode(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Code)
			if showMeta {
				printResultMeta(res.Length, res.Big, res.CacheHit)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMeta, "meta", false, "print how the code was computed")
	return cmd
}

// decodeCommand creates the decode command.
func (c *CLI) decodeCommand() *cobra.Command {
	var (
		labels   string
		showMeta bool
	)

	cmd := &cobra.Command{
		Use:   "decode <length> <code>",
		Short: "Print the permutation with a given Lehmer code",
		Long: `Print the permutation of 0..length-1 whose Lehmer code is code.

With --labels, the labels are printed in the decoded order instead of the
raw permutation.`,
		Example: `  lehmer decode 4 20                        # 3,1,0,2
  lehmer decode 3 4 --labels ann,bob,cy      # cy,ann,bob`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseLength(args[0])
			if err != nil {
				return err
			}
			names := parseLabels(labels)
			if err := lerrors.ValidateLabels(names, length); err != nil {
				return err
			}

			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Decode(cmd.Context(), length, args[1])
			if err != nil {
				return err
			}

			if len(names) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(perm.Apply(res.Permutation, names), ","))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), perm.Format(res.Permutation))
			}
			if showMeta {
				printResultMeta(res.Length, res.Big, res.CacheHit)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&labels, "labels", "", "comma-separated element labels")
	cmd.Flags().BoolVar(&showMeta, "meta", false, "print how the permutation was computed")
	return cmd
}

// factorialCommand creates the factorial command.
func (c *CLI) factorialCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Print n!, the number of permutations of n elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseLength(args[0])
			if err != nil {
				return err
			}
			v, err := lehmer.Default().FactorialBig(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}

// enumerateCommand creates the enumerate command.
func (c *CLI) enumerateCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "enumerate <length>",
		Short: "List permutations in lexicographic order with their codes",
		Long: `List the permutations of 0..length-1 in lexicographic order, each
prefixed with its Lehmer code. Output stops after --limit rows
(0 lists all length! permutations).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseLength(args[0])
			if err != nil {
				return err
			}
			if limit < 0 {
				return lerrors.New(lerrors.ErrCodeInvalidArgument, "--limit cannot be negative")
			}

			total, err := lehmer.Default().FactorialBig(length)
			if err != nil {
				return err
			}
			if limit == 0 && total.Cmp(big.NewInt(1_000_000)) > 0 {
				return lerrors.New(lerrors.ErrCodeInvalidArgument, "%s permutations is too many to list; pass --limit", total)
			}

			sw := startStopwatch(cmd.Context())
			width := len(total.String())
			out := cmd.OutOrStdout()

			p := perm.Seq(length)
			rank := 0
			for {
				fmt.Fprintf(out, "%*d  %s\n", width, rank, perm.Format(p))
				rank++
				if limit > 0 && rank >= limit {
					break
				}
				if !perm.Next(p) {
					break
				}
			}
			sw.done(fmt.Sprintf("Enumerated %d of %s permutations", rank, total))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultEnumerateLimit, "maximum rows to print (0 for all)")
	return cmd
}

// =============================================================================
// Argument Parsing
// =============================================================================

// parseLength parses a length argument in [0, server.DefaultMaxLength].
// The cap keeps factorial and decode from allocating without bound.
func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, lerrors.New(lerrors.ErrCodeInvalidFormat, "length %q is not an integer", s)
	}
	if n < 0 {
		return 0, lerrors.New(lerrors.ErrCodeInvalidArgument, "length cannot be negative, got %d", n)
	}
	if n > server.DefaultMaxLength {
		return 0, lerrors.New(lerrors.ErrCodeInvalidArgument, "length %d exceeds the maximum of %d", n, server.DefaultMaxLength)
	}
	return n, nil
}

// parseLabels splits a comma-separated label list, trimming whitespace.
// An empty string yields nil.
func parseLabels(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
