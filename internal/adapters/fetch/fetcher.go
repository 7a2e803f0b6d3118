// Package fetch provides the memoized remote archive fetcher.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
)

// ZipFetcher implements ports.Fetcher for zip archives over HTTP.
type ZipFetcher struct {
	logger ports.Logger
	client *http.Client
}

// NewFetcher creates a new ZipFetcher.
func NewFetcher(logger ports.Logger) *ZipFetcher {
	return &ZipFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

// Fetch ensures parentDir/name exists and contains the unzipped archive.
// The presence of that directory is the completion marker: when it already
// exists the call returns without any network or extraction work.
func (f *ZipFetcher) Fetch(ctx context.Context, url, name, parentDir string) (string, error) {
	dest := filepath.Join(parentDir, name)
	if _, err := os.Stat(dest); err == nil {
		f.logger.Info("using cached " + name)
		return dest, nil
	}

	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", parentDir)
	}

	// The downloaded archive is cached separately from the extracted tree,
	// keyed by the URL, so a failed extraction does not force a re-download.
	archivePath := filepath.Join(parentDir, ".downloads", fmt.Sprintf("%016x.zip", xxhash.Sum64String(url)))
	if _, err := os.Stat(archivePath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, "failed to inspect download cache"), "path", archivePath)
		}
		if err := f.download(ctx, url, archivePath); err != nil {
			return "", err
		}
	}

	extractDir, err := os.MkdirTemp(parentDir, ".extract-")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create extraction directory")
	}
	defer func() {
		_ = os.RemoveAll(extractDir)
	}()

	if err := unzip(archivePath, extractDir); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to extract archive"), "archive", archivePath)
	}

	// The archive must contain exactly one top-level directory; guessing
	// which entry is "the" root would hide upstream packaging changes.
	entries, err := os.ReadDir(extractDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read extraction directory")
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		return "", zerr.With(zerr.With(domain.ErrArchiveLayout, "url", url), "entries", len(entries))
	}

	if err := os.Rename(filepath.Join(extractDir, entries[0].Name()), dest); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to move extracted archive into place"), "path", dest)
	}

	f.logger.Info("fetched " + name)
	return dest, nil
}

func (f *ZipFetcher) download(ctx context.Context, url, archivePath string) error {
	f.logger.Info("downloading " + url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build download request"), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "download failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.With(zerr.New("download failed"), "url", url), "status", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create download directory")
	}

	// Download to a scratch name first so an interrupted transfer never
	// masquerades as a cached archive.
	tmp, err := os.CreateTemp(filepath.Dir(archivePath), "partial-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create download file")
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "download interrupted"), "url", url)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to finalize download")
	}
	if err := os.Rename(tmp.Name(), archivePath); err != nil {
		return zerr.Wrap(err, "failed to move download into place")
	}
	return nil
}
