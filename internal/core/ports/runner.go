// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// Runner executes a Script in a platform-appropriate shell.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run materializes the script to disk, spawns the interpreter and
	// blocks until it exits. The child inherits the parent's stdout and
	// stderr so tool diagnostics stay visible in real time.
	//
	// A non-zero exit status is returned as an error carrying the status
	// code as metadata.
	Run(ctx context.Context, script domain.Script) error
}
