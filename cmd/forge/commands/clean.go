package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MarcelBraghetto/forge/internal/ui/style"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete the selected target's collected output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, variant := selectors(cmd)
			if err := c.app.Clean(cmd.Context(), target, variant); err != nil {
				return err
			}
			fmt.Println(style.Success("output cleaned"))
			return nil
		},
	}
}
