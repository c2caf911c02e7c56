package cli

import (
	"github.com/spf13/cobra"

	"github.com/mlietz/pagezone/internal/api"
)

// serveCommand exposes the engine over the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		profiles string
		addr     string
		noStore  bool
		store    storeOpts
	)

	cmd := &cobra.Command{
		Use:   "serve <page.json>",
		Short: "Serve the page over the HTTP API",
		Long: `Serve loads a page document and exposes the layout engine over HTTP:
zone listing and mutation, validation, snapshot capture and restore, and
SVG rendering. Named snapshots are backed by the selected store unless
--no-store is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, _, err := c.newController(args[0], profiles)
			if err != nil {
				return err
			}

			opts := []api.Option{api.WithLogger(c.Logger)}
			if !noStore {
				st, err := store.open(cmd.Context())
				if err != nil {
					return err
				}
				defer st.Close()
				opts = append(opts, api.WithSnapshotStore(st))
			}

			printInfo("serving %s on %s", args[0], addr)
			return api.NewServer(ctl, opts...).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	cmd.Flags().StringVar(&addr, "addr", ":8750", "listen address")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "disable the named-snapshot routes")
	store.register(cmd)
	return cmd
}
