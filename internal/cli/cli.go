// Package cli implements the pagezone command-line interface.
//
// This package provides commands for inspecting and validating page zone
// layouts, editing them interactively in a TUI, saving and restoring zone
// snapshots, rendering layouts as SVG, and serving the engine over HTTP.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inspect: Show the zones of a page document
//   - validate: Audit a page layout against its constraints
//   - edit: Resize zones interactively in the terminal
//   - snapshot: Save, restore, list, and delete named zone snapshots
//   - render: Generate an SVG of the page layout
//   - serve: Expose the engine over an HTTP API
//
// All commands operate on page documents: JSON files describing a page's
// marked regions (see the surface package).
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlietz/pagezone/pkg/buildinfo"
	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/interact"
	"github.com/mlietz/pagezone/pkg/observability"
	"github.com/mlietz/pagezone/pkg/surface"
	"github.com/mlietz/pagezone/pkg/uistate"
	"github.com/mlietz/pagezone/pkg/zone"
)

// appName is the application name used for directories and display.
const appName = "pagezone"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pagezone manages fixed-height page zone layouts",
		Long:         `Pagezone is a CLI tool for laying out the header, content, and footer zones of a fixed-height A4 page, enforcing per-zone constraints and the 297mm page budget.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.SetZoneHooks(newLogHooks(c.Logger))
			observability.SetStoreHooks(newStoreLogHooks(c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Engine Factory
// =============================================================================

// engineOptions builds the engine options shared by all commands, loading
// a constraint-profile override file when one is given.
func (c *CLI) engineOptions(profilesPath string) ([]zone.Option, error) {
	opts := []zone.Option{zone.WithLogger(c.Logger)}
	if profilesPath != "" {
		table, err := zone.LoadTable(profilesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, zone.WithTable(table))
		c.Logger.Debug("constraint table loaded", "path", profilesPath)
	}
	return opts, nil
}

// loadDocument reads a page document and materializes its surface.
func (c *CLI) loadDocument(docPath string) (surface.Document, *surface.MemSurface, error) {
	doc, err := surface.ReadDocumentFile(docPath)
	if err != nil {
		return surface.Document{}, nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "load page document")
	}
	return doc, doc.Surface(), nil
}

// loadEngine reads a page document and builds an engine over it.
func (c *CLI) loadEngine(docPath, profilesPath string) (*zone.Engine, *surface.MemSurface, error) {
	_, surf, err := c.loadDocument(docPath)
	if err != nil {
		return nil, nil, err
	}
	opts, err := c.engineOptions(profilesPath)
	if err != nil {
		return nil, nil, err
	}
	return zone.New(surf, opts...), surf, nil
}

// newController builds an initialized interaction controller over a page
// document, backed by the persistent UI-state store.
func (c *CLI) newController(docPath, profilesPath string) (*interact.Controller, *surface.MemSurface, error) {
	eng, surf, err := c.loadEngine(docPath, profilesPath)
	if err != nil {
		return nil, nil, err
	}

	states, err := uistate.NewFileStore("")
	if err != nil {
		c.Logger.Debug("ui state falls back to memory", "err", err)
	}

	opts := []interact.Option{interact.WithLogger(c.Logger)}
	if states != nil {
		opts = append(opts, interact.WithStateStore(states))
	}

	ctl := interact.NewController(eng, opts...)
	if _, err := ctl.Initialize(); err != nil {
		return nil, nil, err
	}
	return ctl, surf, nil
}

// completionCommand generates shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
