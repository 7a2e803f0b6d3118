package pipeline

import (
	"context"
	"path/filepath"

	"github.com/MarcelBraghetto/forge/internal/adapters/manifest"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// Apple mobile compilation targets: one physical-device architecture and
// two simulator architectures that ship to the IDE as a single merged
// library.
const (
	iosDeviceTriple = "aarch64-apple-ios"
	iosSimArmTriple = "aarch64-apple-ios-sim"
	iosSimX86Triple = "x86_64-apple-ios"
)

// ios builds the application as a static library plus the XCFrameworks
// the host Xcode project links against. There is no launch step: the IDE
// owns deployment to devices and simulators.
type ios struct {
	deps *Deps
}

func (p *ios) Name() string {
	return domain.TargetIOS.ID()
}

func (p *ios) Build(ctx context.Context, bctx *domain.Context) error {
	return p.deps.runSteps(ctx, []step{
		{"install toolchain", func(ctx context.Context) error {
			return p.deps.installToolchain(ctx, iosDeviceTriple, iosSimArmTriple, iosSimX86Triple)
		}},
		{"prepare frameworks", func(ctx context.Context) error {
			return p.deps.prepareIOSFrameworks(ctx, bctx)
		}},
		{"compile", func(ctx context.Context) error {
			return p.compile(ctx, bctx)
		}},
		{"merge architectures", func(ctx context.Context) error {
			return p.mergeArchitectures(ctx, bctx)
		}},
		{"create output", func(ctx context.Context) error {
			return p.createOutput(ctx, bctx)
		}},
	})
}

func (p *ios) Run(ctx context.Context, bctx *domain.Context) error {
	if err := p.Build(ctx, bctx); err != nil {
		return err
	}
	p.deps.Logger.Info("open the host Xcode project to deploy; there is no direct launch for this target")
	return nil
}

// libArtifact is the static library the compiler emits for each
// architecture.
func (p *ios) libArtifact() string {
	return "lib" + libName + ".a"
}

func (p *ios) spec(bctx *domain.Context, triple, manifestPath string) compileSpec {
	return compileSpec{
		triple:       triple,
		manifestPath: manifestPath,
		targetDir:    bctx.ArtifactsDir(""),
	}
}

// stagingDir collects the per-destination libraries the host project
// links: one device library and one merged simulator library.
func (p *ios) stagingDir(bctx *domain.Context, destination string) string {
	return filepath.Join(bctx.WorkDir, "lib", destination)
}

// compile rewrites the manifest to emit a static library, then compiles
// it once per architecture.
func (p *ios) compile(ctx context.Context, bctx *domain.Context) error {
	rewritten, err := p.deps.Rewriter.Rewrite(
		bctx.ManifestPath(),
		manifest.CrateTypeStaticLib,
		filepath.Join(bctx.WorkDir, "manifest"),
	)
	if err != nil {
		return err
	}

	for _, triple := range []string{iosDeviceTriple, iosSimArmTriple, iosSimX86Triple} {
		if err := p.deps.compile(ctx, bctx, p.spec(bctx, triple, rewritten)); err != nil {
			return err
		}
	}
	return nil
}

// mergeArchitectures stages the device library as-is and joins the two
// simulator slices into one fat library, mirroring how the native
// dependencies are packaged.
func (p *ios) mergeArchitectures(ctx context.Context, bctx *domain.Context) error {
	artifact := p.libArtifact()

	deviceDir := p.stagingDir(bctx, "device")
	if err := p.deps.Ops.CreateDir(deviceDir); err != nil {
		return err
	}
	device := artifactPath(bctx, p.spec(bctx, iosDeviceTriple, ""), artifact)
	if err := p.deps.Ops.Copy(device, filepath.Join(deviceDir, artifact)); err != nil {
		return err
	}

	return p.deps.lipoCreate(ctx,
		filepath.Join(p.stagingDir(bctx, "simulator"), artifact),
		artifactPath(bctx, p.spec(bctx, iosSimArmTriple, ""), artifact),
		artifactPath(bctx, p.spec(bctx, iosSimX86Triple, ""), artifact),
	)
}

// createOutput collects the staged libraries, the packaged native
// dependencies and the assets, then links the output into the host Xcode
// project tree so the IDE picks up every rebuild without path changes.
func (p *ios) createOutput(_ context.Context, bctx *domain.Context) error {
	if err := p.deps.Collector.Clean(bctx); err != nil {
		return err
	}
	if err := p.deps.Collector.Collect(bctx,
		p.stagingDir(bctx, "device"),
		p.stagingDir(bctx, "simulator"),
		bctx.FrameworksDir,
	); err != nil {
		return err
	}
	if err := p.deps.placeAssets(bctx, collect.OutputDir(bctx)); err != nil {
		return err
	}

	link := filepath.Join(bctx.HomeDir, "xcode", "Generated")
	if err := p.deps.Ops.CreateDir(filepath.Dir(link)); err != nil {
		return err
	}
	return p.deps.Ops.Symlink(collect.OutputDir(bctx), link)
}
