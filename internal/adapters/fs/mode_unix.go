//go:build !windows

package fs

import (
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// ApplyMode sets the full permission mode on path.
func (o *Ops) ApplyMode(path string, mode fs.FileMode) error {
	if err := os.Chmod(path, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to apply permissions"), "path", path)
	}
	return nil
}

// ApplyExecutable marks path as executable.
func (o *Ops) ApplyExecutable(path string) error {
	return o.ApplyMode(path, 0o755)
}
