//go:build windows

package fs

import (
	"os/exec"
	"path/filepath"
)

// copyDir copies the source directory as a child of destination. xcopy
// merges contents into the destination by default, so the basename is
// appended explicitly to keep the directory-as-child contract.
func copyDir(source, destination string) error {
	child := filepath.Join(destination, filepath.Base(source))
	return exec.Command("xcopy", source, child, "/E", "/I", "/Q", "/Y").Run()
}
