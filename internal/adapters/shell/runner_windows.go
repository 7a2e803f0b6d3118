//go:build windows

package shell

import (
	"context"
	"os/exec"
)

const scriptExt = ".bat"

// cmd.exe has no strict-mode equivalent; batch scripts run as written.
const scriptPreamble = "@echo off\r\n"

func interpreterCommand(ctx context.Context, path string) *exec.Cmd {
	return exec.CommandContext(ctx, "cmd", "/C", path)
}
