package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Copy copies source into destination. A directory source is copied
// recursively via the platform copy tool and appears as a same-named child
// of destination; a file source is copied directly to the destination path.
//
// The external tool is used for directory copies because the stdlib has no
// recursive copy and hand-rolled walkers diverge on symlinks and
// permissions across platforms. The platform-specific argument handling
// preserves the basename-as-child contract on every OS.
func (o *Ops) Copy(source, destination string) error {
	info, err := os.Stat(source)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to inspect copy source"), "path", source)
	}

	if info.IsDir() {
		if err := o.CreateDir(destination); err != nil {
			return err
		}
		if err := copyDir(source, destination); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy directory"), "source", source), "destination", destination)
		}
		return nil
	}

	return o.copyFile(source, destination)
}

func (o *Ops) copyFile(source, destination string) error {
	if err := o.CreateDir(filepath.Dir(destination)); err != nil {
		return err
	}

	in, err := os.Open(source) //nolint:gosec // build-tree path
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open copy source"), "path", source)
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to inspect copy source"), "path", source)
	}

	out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // build-tree path
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create copy destination"), "path", destination)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", destination)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to finalize copy"), "path", destination)
	}
	return nil
}
