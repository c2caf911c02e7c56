package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// editCommand opens the interactive zone editor.
func (c *CLI) editCommand() *cobra.Command {
	var (
		profiles string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "edit <page.json>",
		Short: "Resize zones interactively in the terminal",
		Long: `Edit opens a terminal editor for the page's zones. Zones can be
resized with the keyboard or by dragging their lower edge with the mouse;
all changes go through the height resolver, so constraint bounds and the
297mm page budget always hold. Changes are written back with "s".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, surf, err := c.newController(args[0], profiles)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = args[0]
			}

			model := newEditorModel(ctl, surf, out)
			prog := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)

			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			if m, ok := final.(editorModel); ok && m.saved {
				printSuccess("page document updated")
				printFile(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profiles, "profiles", "", "constraint profile overrides (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the updated document to this path")
	return cmd
}
