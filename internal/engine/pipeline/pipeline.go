// Package pipeline implements the per-target build pipelines.
//
// Every pipeline is a strict linear sequence of named steps composed from
// the lower-level adapters: toolchain installation, native dependency
// preparation, source compilation, architecture merging, output collection
// and an optional launch. The first failing step aborts the rest.
package pipeline

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/adapters/fs"
	"github.com/MarcelBraghetto/forge/internal/adapters/manifest"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// Pipeline builds one target.
type Pipeline interface {
	// Name returns the target selector the pipeline serves.
	Name() string

	// Build runs the pipeline's build steps against the context.
	Build(ctx context.Context, bctx *domain.Context) error

	// Run performs Build and then launches the collected output where the
	// target supports direct launching.
	Run(ctx context.Context, bctx *domain.Context) error
}

// Deps bundles the services every pipeline composes.
type Deps struct {
	Logger    ports.Logger
	Runner    ports.Runner
	Fetcher   ports.Fetcher
	Telemetry ports.Telemetry
	Ops       *fs.Ops
	Collector *collect.Collector
	Rewriter  *manifest.Rewriter
}

// ForTarget returns the pipeline serving the given target.
func (d *Deps) ForTarget(target domain.Target) Pipeline {
	switch target {
	case domain.TargetDesktopBundled:
		return &desktopBundled{deps: d}
	case domain.TargetBrowser:
		return &browser{deps: d}
	case domain.TargetIOS:
		return &ios{deps: d}
	case domain.TargetAndroid:
		return &android{deps: d}
	default:
		return &desktopConsole{deps: d}
	}
}

// step is one named unit of pipeline work.
type step struct {
	name string
	fn   func(ctx context.Context) error
}

// runSteps executes the steps in order, recording one telemetry vertex per
// step and short-circuiting on the first failure. The failing step's name
// is attached to the returned error so the operator sees where the build
// stopped; the underlying tool's own output has already gone to the
// inherited streams.
func (d *Deps) runSteps(ctx context.Context, steps []step) error {
	for _, s := range steps {
		vertex := d.Telemetry.Record(ctx, s.name)
		d.Logger.Info(s.name)

		if err := s.fn(ctx); err != nil {
			vertex.Complete(err)
			return zerr.With(zerr.Wrap(err, "pipeline step failed"), "step", s.name)
		}
		vertex.Complete(nil)
	}
	return nil
}
