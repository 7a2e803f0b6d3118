package fetch

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// unzip extracts the archive into destDir, preserving file modes. Entries
// escaping the destination are rejected.
func unzip(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return zerr.Wrap(err, "failed to open archive")
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, file := range reader.File {
		if err := extractEntry(file, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(file *zip.File, destDir string) error {
	path := filepath.Join(destDir, filepath.FromSlash(file.Name))
	if !strings.HasPrefix(path, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return zerr.With(zerr.New("archive entry escapes destination"), "entry", file.Name)
	}

	if file.FileInfo().IsDir() {
		return os.MkdirAll(path, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create entry directory")
	}

	in, err := file.Open()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive entry"), "entry", file.Name)
	}
	defer func() {
		_ = in.Close()
	}()

	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create extracted file"), "path", path)
	}

	if _, err := io.Copy(out, in); err != nil { //nolint:gosec // trusted build dependency archives
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to extract entry"), "entry", file.Name)
	}
	return out.Close()
}
