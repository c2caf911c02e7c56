package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/snapshot"
	"github.com/mlietz/pagezone/pkg/surface"
	"github.com/mlietz/pagezone/pkg/zone"
)

// storeOpts holds the snapshot-store backend flags shared by the snapshot
// subcommands and serve.
type storeOpts struct {
	backend   string // file, redis, or mongo
	dir       string // file: snapshot directory
	redisAddr string // redis: server address
	redisDB   int    // redis: database number
	mongoURI  string // mongo: connection string
}

// register adds the backend flags to a command.
func (o *storeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.backend, "store", "file", "snapshot store backend: file, redis, mongo")
	cmd.Flags().StringVar(&o.dir, "store-dir", "", "file store directory (default ~/.config/pagezone/snapshots)")
	cmd.Flags().StringVar(&o.redisAddr, "redis-addr", "localhost:6379", "redis server address")
	cmd.Flags().IntVar(&o.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&o.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb connection string")
}

// open connects the selected backend.
func (o *storeOpts) open(ctx context.Context) (snapshot.Store, error) {
	switch o.backend {
	case "file":
		return snapshot.NewFileStore(o.dir)
	case "redis":
		store, err := snapshot.NewRedisStore(ctx, snapshot.RedisConfig{Addr: o.redisAddr, DB: o.redisDB})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "open redis store")
		}
		return store, nil
	case "mongo":
		store, err := snapshot.NewMongoStore(ctx, snapshot.MongoConfig{URI: o.mongoURI})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "open mongo store")
		}
		return store, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", o.backend)
	}
}

// snapshotCommand groups the snapshot subcommands.
func (c *CLI) snapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, restore, list, and delete named zone snapshots",
	}
	cmd.AddCommand(c.snapshotSaveCommand())
	cmd.AddCommand(c.snapshotRestoreCommand())
	cmd.AddCommand(c.snapshotListCommand())
	cmd.AddCommand(c.snapshotDeleteCommand())
	return cmd
}

func (c *CLI) snapshotSaveCommand() *cobra.Command {
	var (
		profiles string
		name     string
		store    storeOpts
	)

	cmd := &cobra.Command{
		Use:   "save <page.json>",
		Short: "Capture the page's zone state under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := c.loadEngine(args[0], profiles)
			if err != nil {
				return err
			}

			st, err := store.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			snap := snapshot.New(name, eng.GetZoneData())
			if err := st.Save(cmd.Context(), snap); err != nil {
				return err
			}
			printSuccess("saved snapshot %q (%d zones)", name, len(snap.Zones))
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	cmd.Flags().StringVarP(&name, "name", "n", "default", "snapshot name")
	store.register(cmd)
	return cmd
}

func (c *CLI) snapshotRestoreCommand() *cobra.Command {
	var (
		profiles string
		name     string
		output   string
		store    storeOpts
	)

	cmd := &cobra.Command{
		Use:   "restore <page.json>",
		Short: "Replay a named snapshot onto a page document",
		Long: `Restore loads a named snapshot and replays its heights onto the page
document through the height resolver, so constraint bounds and the page
budget still apply. The updated document is written back (or to --output).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, surf, err := c.loadDocument(args[0])
			if err != nil {
				return err
			}
			opts, err := c.engineOptions(profiles)
			if err != nil {
				return err
			}
			eng := zone.New(surf, opts...)

			st, err := store.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			snap, err := st.Load(cmd.Context(), name)
			if err != nil {
				return err
			}

			page := eng.ApplyZoneData(snap.Zones)

			out := output
			if out == "" {
				out = args[0]
			}
			if err := surface.WriteDocumentFile(surf.Snapshot(doc.Name), out); err != nil {
				return fmt.Errorf("write page document: %w", err)
			}

			printSuccess("restored snapshot %q (saved %s)", name, snap.SavedAt.Format(time.RFC3339))
			printFile(out)
			printBudget(page)
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	cmd.Flags().StringVarP(&name, "name", "n", "default", "snapshot name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the updated document to this path")
	store.register(cmd)
	return cmd
}

func (c *CLI) snapshotListCommand() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshot names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			names, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				printInfo("no snapshots stored")
				return nil
			}
			for _, n := range names {
				fmt.Println("  " + StyleValue.Render(n))
			}
			return nil
		},
	}

	store.register(cmd)
	return cmd
}

func (c *CLI) snapshotDeleteCommand() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("deleted snapshot %q", args[0])
			return nil
		},
	}

	store.register(cmd)
	return cmd
}
