package pipeline

import (
	"context"
	"path/filepath"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// desktopConsole builds the host-platform console executable.
type desktopConsole struct {
	deps *Deps
}

func (p *desktopConsole) Name() string {
	return domain.TargetDesktopConsole.ID()
}

func (p *desktopConsole) Build(ctx context.Context, bctx *domain.Context) error {
	return p.deps.runSteps(ctx, []step{
		{"compile", func(ctx context.Context) error {
			return p.deps.compile(ctx, bctx, p.spec(bctx))
		}},
		{"create output", func(ctx context.Context) error {
			return p.createOutput(ctx, bctx)
		}},
	})
}

func (p *desktopConsole) Run(ctx context.Context, bctx *domain.Context) error {
	if err := p.Build(ctx, bctx); err != nil {
		return err
	}
	return p.deps.launchBinary(ctx, collect.OutputDir(bctx), bctx.Project.Name)
}

func (p *desktopConsole) spec(bctx *domain.Context) compileSpec {
	return compileSpec{
		manifestPath: bctx.ManifestPath(),
		targetDir:    bctx.ArtifactsDir(""),
	}
}

func (p *desktopConsole) createOutput(_ context.Context, bctx *domain.Context) error {
	if err := p.deps.Collector.Clean(bctx); err != nil {
		return err
	}

	binary := artifactPath(bctx, p.spec(bctx), bctx.Project.Name)
	if err := p.deps.Collector.Collect(bctx, binary); err != nil {
		return err
	}

	out := collect.OutputDir(bctx)
	if err := p.deps.Ops.ApplyExecutable(filepath.Join(out, bctx.Project.Name)); err != nil {
		return err
	}
	return p.deps.placeAssets(bctx, out)
}

// placeAssets makes the runtime assets available next to a collected
// binary: a symlink for Debug (fast, no-copy iteration) and a physical
// copy for Release (the output must be relocatable on its own).
func (d *Deps) placeAssets(bctx *domain.Context, destDir string) error {
	link := filepath.Join(destDir, "assets")
	if bctx.Variant == domain.VariantDebug {
		return d.Ops.Symlink(bctx.AssetsDir, link)
	}
	if err := d.Ops.Delete(link); err != nil {
		return err
	}
	return d.Ops.Copy(bctx.AssetsDir, destDir)
}
