// Package shell provides the script runner adapter.
//
// Every external tool invocation in the orchestrator goes through this
// package: the script body is materialized to a file wrapped in a
// platform-appropriate interpreter invocation, which gives uniform
// fail-fast semantics across operating systems instead of ad hoc per-command
// process spawning.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger

	// Stdout and Stderr are inherited by every child process. They default
	// to the parent's streams so tool output stays visible in real time;
	// tests may substitute buffers.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run materializes the script into a fresh temporary directory, spawns the
// platform interpreter on it and blocks until the child exits. The
// temporary directory is removed when the call returns, success or not.
//
// The child's working directory is the script's override if present,
// otherwise the temporary directory itself. Script environment variables
// are merged into the inherited environment, with the script winning on
// conflicts.
func (r *Runner) Run(ctx context.Context, script domain.Script) error {
	command, _, _ := strings.Cut(script.Content(), "\n")
	r.logger.Info("running " + command)

	tmpDir, err := os.MkdirTemp("", "forge-script-")
	if err != nil {
		return zerr.Wrap(err, "failed to create script directory")
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	path := filepath.Join(tmpDir, "job"+scriptExt)
	body := scriptPreamble + script.Content() + "\n"
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil { //nolint:gosec // script must be executable
		return zerr.With(zerr.Wrap(err, "failed to write script"), "path", path)
	}

	cmd := interpreterCommand(ctx, path)
	if script.WorkingDir() != "" {
		cmd.Dir = script.WorkingDir()
	} else {
		cmd.Dir = tmpDir
	}
	cmd.Env = mergeEnvironment(os.Environ(), script.Env())
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(domain.ErrScriptFailed, err.Error()), "exit_code", exitCode)
	}

	return nil
}

// mergeEnvironment overlays the script's variables onto the inherited
// environment. Later entries win, so overrides are appended last.
func mergeEnvironment(sysEnv []string, scriptEnv map[string]string) []string {
	if len(scriptEnv) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(scriptEnv))
	order := make([]string, 0, len(sysEnv)+len(scriptEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}
	for k, v := range scriptEnv {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
