package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// inspectCommand shows the zones of a page document.
func (c *CLI) inspectCommand() *cobra.Command {
	var profiles string

	cmd := &cobra.Command{
		Use:   "inspect <page.json>",
		Short: "Show the zones of a page document",
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

			fmt.Println(StyleTitle.Render("Page Zones"))
			fmt.Println(renderZoneTable(page))
			printBudget(page)
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	return cmd
}
