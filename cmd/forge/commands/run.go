package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build the selected target, then launch it",
		Long: "Build the selected target, then launch it: desktop targets spawn the " +
			"collected binary, the browser target serves the output over HTTP and opens " +
			"the default browser, and the mobile targets leave launching to the host IDE.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, variant := selectors(cmd)
			return c.app.Run(cmd.Context(), target, variant)
		},
	}
}
