// Package commands implements the CLI commands for the forge build tool.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MarcelBraghetto/forge/internal/app"
	"github.com/MarcelBraghetto/forge/internal/build"
	"github.com/MarcelBraghetto/forge/internal/ui/style"
)

// CLI represents the command line interface for forge.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. Invoking the root
// command builds the selected target; run, clean and version are
// subcommands.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "Cross-platform build orchestrator for SDL2 applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("target", "t", "",
		"Build target: desktop-console, desktop-bundled, browser (web), ios (mobile-a) or android (mobile-b)")
	rootCmd.PersistentFlags().String("variant", "",
		"Build variant: debug or release (case-insensitive)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		target, variant := selectors(cmd)
		if err := c.app.Build(cmd.Context(), target, variant); err != nil {
			return err
		}
		fmt.Println(style.Success("build complete"))
		return nil
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// selectors returns the target and variant flag values for the command.
func selectors(cmd *cobra.Command) (string, string) {
	target, _ := cmd.Flags().GetString("target")
	variant, _ := cmd.Flags().GetString("variant")
	return target, variant
}
