//go:build !windows

package fs

import "os/exec"

// copyDir copies the source directory as a child of destination. Without a
// trailing slash, cp -R places the directory itself (not its contents)
// under the destination.
func copyDir(source, destination string) error {
	return exec.Command("cp", "-R", source, destination).Run()
}
