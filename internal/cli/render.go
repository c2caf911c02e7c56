package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlietz/pagezone/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string  // output SVG path
	title  string  // title annotation
	bounds bool    // annotate adjustable zones with their bounds
	scale  float64 // output pixels per millimeter
}

// renderCommand generates an SVG of the page layout.
func (c *CLI) renderCommand() *cobra.Command {
	var profiles string
	opts := renderOpts{scale: 2}

	cmd := &cobra.Command{
		Use:   "render <page.json>",
		Short: "Render the page layout as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := c.loadEngine(args[0], profiles)
			if err != nil {
				return err
			}

			page, err := eng.InitializeZones()
			if err != nil {
				return err
			}

			svgOpts := []render.SVGOption{render.WithScale(opts.scale)}
			if opts.title != "" {
				svgOpts = append(svgOpts, render.WithTitle(opts.title))
			}
			if opts.bounds {
				svgOpts = append(svgOpts, render.WithBounds())
			}

			out := opts.output
			if out == "" {
				out = strings.TrimSuffix(args[0], ".json") + ".svg"
			}
			if err := os.WriteFile(out, render.SVG(page, svgOpts...), 0644); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}

			printSuccess("rendered %d zones", len(page.Zones))
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output SVG path (default: document path with .svg)")
	cmd.Flags().StringVar(&opts.title, "title", "", "title annotation")
	cmd.Flags().BoolVar(&opts.bounds, "bounds", false, "annotate adjustable zones with their constraint bounds")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "output pixels per millimeter")
	return cmd
}
