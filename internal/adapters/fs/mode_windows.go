//go:build windows

package fs

import "io/fs"

// ApplyMode is a no-op on Windows, preserving call-site uniformity with
// POSIX platforms.
func (o *Ops) ApplyMode(_ string, _ fs.FileMode) error {
	return nil
}

// ApplyExecutable is a no-op on Windows.
func (o *Ops) ApplyExecutable(_ string) error {
	return nil
}
