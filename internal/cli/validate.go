package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand audits a page layout against its constraints.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		profiles string
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "validate <page.json>",
		Short: "Audit a page layout against its constraints",
		Long: `Validate audits a page document for structural problems: a missing
content zone, zones exceeding the page height budget, and overlapping
zones. Warnings are advisory unless --strict is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := c.loadEngine(args[0], profiles)
			if err != nil {
				return err
			}
			res := eng.ValidatePageLayout()
			if res.Valid {
				printSuccess("page layout is valid")
				return nil
			}

			for _, w := range res.Warnings {
				printWarning("%s", w)
			}
			if strict {
				return fmt.Errorf("layout validation produced %d warning(s)", len(res.Warnings))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when warnings are present")
	return cmd
}
