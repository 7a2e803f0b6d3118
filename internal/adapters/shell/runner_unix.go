//go:build !windows

package shell

import (
	"context"
	"os/exec"
)

const scriptExt = ".sh"

// scriptPreamble makes every generated script fail fast: on the first
// failing command, on unset variables, and on failures inside pipes.
const scriptPreamble = "#!/usr/bin/env bash\nset -euo pipefail\n\n"

func interpreterCommand(ctx context.Context, path string) *exec.Cmd {
	return exec.CommandContext(ctx, "bash", path)
}
