// Package collect implements the per-target, per-variant output collector.
package collect

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/adapters/fs"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// OutputDir returns the final output directory for the build:
// <target home>/out/<variant id>. It is a pure function of the context.
func OutputDir(bctx *domain.Context) string {
	return filepath.Join(bctx.HomeDir, "out", bctx.Variant.ID())
}

// Collector places build artifacts into the output directory.
type Collector struct {
	ops *fs.Ops
}

// NewCollector creates a new Collector.
func NewCollector(ops *fs.Ops) *Collector {
	return &Collector{ops: ops}
}

// Clean deletes the output directory and everything under it. Pipelines
// call this before every collect so no stale artifacts survive a variant
// switch.
func (c *Collector) Clean(bctx *domain.Context) error {
	return c.ops.Delete(OutputDir(bctx))
}

// Collect creates the output directory if missing, then copies each source
// into it in order: directories appear as same-named children, files are
// copied to their base name at the top level. A failure partway through
// aborts immediately; whatever was collected stays in place, which is safe
// because Clean always precedes the next Collect.
func (c *Collector) Collect(bctx *domain.Context, sources ...string) error {
	out := OutputDir(bctx)
	if err := c.ops.CreateDir(out); err != nil {
		return err
	}

	for _, source := range sources {
		info, err := os.Stat(source)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to inspect collect source"), "path", source)
		}

		if info.IsDir() {
			if err := c.ops.Copy(source, out); err != nil {
				return err
			}
			continue
		}

		if err := c.ops.Copy(source, filepath.Join(out, filepath.Base(source))); err != nil {
			return err
		}
	}
	return nil
}
