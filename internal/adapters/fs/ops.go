// Package fs provides cross-platform-safe filesystem primitives for the
// build pipelines.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Ops implements the filesystem utility operations the pipelines compose.
type Ops struct{}

// NewOps creates a new Ops.
func NewOps() *Ops {
	return &Ops{}
}

// CreateDir creates the full directory chain if missing. It is a no-op when
// the directory already exists.
func (o *Ops) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// Delete removes whatever exists at path: directories recursively, files
// and symlinks individually. A broken symlink reports as absent to a plain
// existence check, so classification goes through Lstat — the link entry
// itself must be removed. Deleting a path that does not exist is a no-op.
func (o *Ops) Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to inspect path"), "path", path)
	}

	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to delete directory"), "path", path)
		}
		return nil
	}

	if err := os.Remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to delete file"), "path", path)
	}
	return nil
}

// WriteBytes creates any missing parent directories, then writes the full
// content, overwriting an existing file.
func (o *Ops) WriteBytes(content []byte, path string) error {
	if err := o.CreateDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// WriteString writes text content via WriteBytes.
func (o *Ops) WriteString(content, path string) error {
	return o.WriteBytes([]byte(content), path)
}

// Symlink creates a symbolic link at linkPath pointing to target, replacing
// any existing entry at linkPath. Used to expose build outputs inside
// native IDE project trees without duplicating files.
func (o *Ops) Symlink(target, linkPath string) error {
	if err := o.Delete(linkPath); err != nil {
		return err
	}
	if err := o.CreateDir(filepath.Dir(linkPath)); err != nil {
		return err
	}
	if err := os.Symlink(target, linkPath); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to create symlink"), "target", target), "link", linkPath)
	}
	return nil
}
