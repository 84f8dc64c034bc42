package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/lehmer/internal/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the JSON HTTP API until interrupted.

The listen address defaults to server.addr from the config file (or
LEHMER_ADDR). The cache and store backends come from the config as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := server.New(runner, c.Logger, server.Options{
				MaxLength:    maxLength,
				ReadTimeout:  cfg.Server.ReadTimeout.Duration,
				WriteTimeout: cfg.Server.WriteTimeout.Duration,
			})
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().IntVar(&maxLength, "max-length", server.DefaultMaxLength, "largest permutation length accepted")
	return cmd
}
