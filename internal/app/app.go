// Package app implements the application layer for forge.
package app

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
	"github.com/MarcelBraghetto/forge/internal/engine/pipeline"
)

// App represents the main application logic: selector parsing, project
// discovery and pipeline dispatch.
type App struct {
	configLoader ports.ConfigLoader
	pipelines    *pipeline.Deps
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pipelines *pipeline.Deps, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		configLoader: loader,
		pipelines:    pipelines,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Build runs the selected pipeline's build steps.
func (a *App) Build(ctx context.Context, targetSel, variantSel string) error {
	bctx, err := a.context(targetSel, variantSel)
	if err != nil {
		return err
	}

	p := a.pipelines.ForTarget(bctx.Target)
	a.logger.Info("building " + bctx.Project.Name + " for " + p.Name() + " (" + bctx.Variant.ID() + ")")

	if err := p.Build(ctx, bctx); err != nil {
		return zerr.Wrap(err, "build failed")
	}
	return nil
}

// Run builds the selected target and then launches it where the target
// supports direct launching.
func (a *App) Run(ctx context.Context, targetSel, variantSel string) error {
	bctx, err := a.context(targetSel, variantSel)
	if err != nil {
		return err
	}

	p := a.pipelines.ForTarget(bctx.Target)
	a.logger.Info("running " + bctx.Project.Name + " for " + p.Name() + " (" + bctx.Variant.ID() + ")")

	if err := p.Run(ctx, bctx); err != nil {
		return zerr.Wrap(err, "run failed")
	}
	return nil
}

// Clean deletes the selected target's collected output for the variant.
// Caches under the working directory survive; they are invalidated by
// dependency version bumps, not by cleaning.
func (a *App) Clean(_ context.Context, targetSel, variantSel string) error {
	bctx, err := a.context(targetSel, variantSel)
	if err != nil {
		return err
	}

	a.logger.Info("cleaning " + bctx.Target.ID() + " (" + bctx.Variant.ID() + ") output")
	if err := a.pipelines.Collector.Clean(bctx); err != nil {
		return zerr.Wrap(err, "clean failed")
	}
	return nil
}

// Close releases long-lived resources, flushing any pending telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// context validates the selectors and resolves the build context from the
// discovered project root. Selector errors surface before any pipeline
// step runs.
func (a *App) context(targetSel, variantSel string) (*domain.Context, error) {
	target, err := domain.ParseTarget(targetSel)
	if err != nil {
		return nil, err
	}
	variant, err := domain.ParseVariant(variantSel)
	if err != nil {
		return nil, err
	}

	root, project, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project configuration")
	}

	return domain.NewContext(root, target, variant, project)
}
