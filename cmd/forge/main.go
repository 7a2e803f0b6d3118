// Package main is the entry point for the forge CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/cmd/forge/commands"
	"github.com/MarcelBraghetto/forge/internal/app"
	"github.com/MarcelBraghetto/forge/internal/ui/style"
	_ "github.com/MarcelBraghetto/forge/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Interrupting the process also terminates any currently-running
	// child tool through the shared context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.App.Close()
	}()

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		// One full report with the error chain's context, then the
		// styled verdict line.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, style.Failure("failed"))
		return exitCode(err)
	}
	return 0
}

// exitCode propagates the deepest failing script's exit code when one is
// recorded on the error chain, falling back to a generic failure code.
func exitCode(err error) int {
	for e := err; e != nil; e = errors.Unwrap(e) {
		zErr, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		if code, ok := zErr.Metadata()["exit_code"].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
