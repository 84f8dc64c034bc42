package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lehmer/pkg/perm"
)

// storeCommand creates the store command for named orderings.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Save and load named orderings",
		Long: `Save and load named orderings.

An ordering is stored as its length and Lehmer code. The backend is chosen
by store.backend in the config file: a directory of JSON files by default,
or a MongoDB collection.`,
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

func (c *CLI) storeSaveCommand() *cobra.Command {
	var labels string

	cmd := &cobra.Command{
		Use:     "save <name> <permutation>",
		Short:   "Save a permutation under a name",
		Example: `  lehmer store save seating 2,0,1 --labels ann,bob,cy`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := perm.Parse(args[1])
			if err != nil {
				return err
			}

			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			o, err := runner.Save(cmd.Context(), args[0], p, parseLabels(labels))
			if err != nil {
				return err
			}
			printSuccess("Saved %s", StyleHighlight.Render(o.Name))
			printDetail("%d elements, code %s", o.Length, o.Code)
			printNextStep("Load it with", "lehmer store get "+o.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&labels, "labels", "", "comma-separated element labels")
	return cmd
}

func (c *CLI) storeGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print a saved ordering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			e, err := runner.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printKeyValue("Name", e.Name)
			printKeyValue("ID", e.ID)
			printKeyValue("Length", fmt.Sprint(e.Length))
			printKeyValue("Code", e.Code)
			printKeyValue("Permutation", perm.Format(e.Permutation))
			if len(e.Arranged) > 0 {
				printKeyValue("Arranged", strings.Join(e.Arranged, ", "))
			}
			printKeyValue("Updated", e.UpdatedAt.Local().Format(time.DateTime))
			return nil
		},
	}
}

func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved orderings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			list, err := runner.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				printInfo("No saved orderings")
				return nil
			}
			for _, o := range list {
				printKeyValue(o.Name, fmt.Sprintf("%d elements · code %s", o.Length, o.Code))
			}
			return nil
		},
	}
}

func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved ordering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			if err := runner.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
