package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// nativeDeps lists the native libraries every non-browser target needs,
// in link order.
func nativeDeps(p domain.Project) []domain.Dependency {
	return []domain.Dependency{p.SDL2, p.SDL2Image}
}

// appleLib describes how one native dependency is built with xcodebuild
// from its fetched source tree.
type appleLib struct {
	dep            domain.Dependency
	project        string // Xcode project path inside the source tree
	staticTarget   string
	dylibTarget    string
	staticArtifact string
	dylibArtifact  string
	headers        string // public header dir packed into the XCFramework
}

func appleLibs(p domain.Project) []appleLib {
	return []appleLib{
		{
			dep:            p.SDL2,
			project:        "Xcode/SDL/SDL.xcodeproj",
			staticTarget:   "Static Library-iOS",
			dylibTarget:    "Shared Library",
			staticArtifact: "libSDL2.a",
			dylibArtifact:  "libSDL2.dylib",
			headers:        "include",
		},
		{
			dep:            p.SDL2Image,
			project:        "Xcode/SDL_image.xcodeproj",
			staticTarget:   "Static Library",
			dylibTarget:    "Shared Library",
			staticArtifact: "libSDL2_image.a",
			dylibArtifact:  "libSDL2_image.dylib",
			headers:        "include",
		},
	}
}

// prepareIOSFrameworks acquires and compiles the native dependencies into
// XCFrameworks under the context's Frameworks directory: one device slice,
// two simulator slices joined by lipo, then the cross-architecture package.
// A dependency whose packaged output already exists is skipped entirely,
// mirroring the fetcher's caching posture.
func (d *Deps) prepareIOSFrameworks(ctx context.Context, bctx *domain.Context) error {
	for _, lib := range appleLibs(bctx.Project) {
		framework := filepath.Join(bctx.FrameworksDir, lib.dep.Name+".xcframework")
		if _, err := os.Stat(framework); err == nil {
			d.cached(ctx, lib.dep.Name+" xcframework")
			continue
		}

		src, err := d.Fetcher.Fetch(ctx, lib.dep.URL, lib.dep.CacheName(), bctx.WorkDir)
		if err != nil {
			return err
		}

		buildRoot := filepath.Join(bctx.WorkDir, "native", lib.dep.Name)
		deviceDir := filepath.Join(buildRoot, "device")
		simArmDir := filepath.Join(buildRoot, "simulator-arm64")
		simX86Dir := filepath.Join(buildRoot, "simulator-x86_64")
		simDir := filepath.Join(buildRoot, "simulator")

		// One build per architecture/configuration combination.
		builds := []struct {
			sdk  string
			arch string
			out  string
		}{
			{sdk: "iphoneos", arch: "arm64", out: deviceDir},
			{sdk: "iphonesimulator", arch: "arm64", out: simArmDir},
			{sdk: "iphonesimulator", arch: "x86_64", out: simX86Dir},
		}
		for _, b := range builds {
			if err := d.xcodebuild(ctx, src, lib.project, lib.staticTarget, b.sdk, b.arch, b.out); err != nil {
				return err
			}
		}

		// The two simulator CPU slices are presented to the IDE as one
		// merged binary before the final package is constructed.
		if err := d.lipoCreate(ctx,
			filepath.Join(simDir, lib.staticArtifact),
			filepath.Join(simArmDir, lib.staticArtifact),
			filepath.Join(simX86Dir, lib.staticArtifact),
		); err != nil {
			return err
		}

		headers := filepath.Join(src, lib.headers)
		if err := d.createXCFramework(ctx, framework, headers,
			filepath.Join(deviceDir, lib.staticArtifact),
			filepath.Join(simDir, lib.staticArtifact),
		); err != nil {
			return err
		}
	}
	return nil
}

// prepareMacOSDylibs acquires and compiles the native dependencies as
// dynamic libraries under the context's Frameworks directory, skipping any
// dependency whose dylib already exists.
func (d *Deps) prepareMacOSDylibs(ctx context.Context, bctx *domain.Context) error {
	for _, lib := range appleLibs(bctx.Project) {
		dylib := filepath.Join(bctx.FrameworksDir, lib.dylibArtifact)
		if _, err := os.Stat(dylib); err == nil {
			d.cached(ctx, lib.dylibArtifact)
			continue
		}

		src, err := d.Fetcher.Fetch(ctx, lib.dep.URL, lib.dep.CacheName(), bctx.WorkDir)
		if err != nil {
			return err
		}

		if err := d.xcodebuild(ctx, src, lib.project, lib.dylibTarget, "macosx", "", bctx.FrameworksDir); err != nil {
			return err
		}
	}
	return nil
}

// xcodebuild builds one target of one Xcode project into outDir.
func (d *Deps) xcodebuild(ctx context.Context, srcDir, project, target, sdk, arch, outDir string) error {
	if err := d.Ops.CreateDir(outDir); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("xcodebuild")
	b.WriteString(" -project " + quote(filepath.Join(srcDir, project)))
	b.WriteString(" -target " + quote(target))
	b.WriteString(" -configuration Release")
	b.WriteString(" -sdk " + sdk)
	if arch != "" {
		b.WriteString(" ARCHS=" + arch + " ONLY_ACTIVE_ARCH=NO")
	}
	b.WriteString(" CONFIGURATION_BUILD_DIR=" + quote(outDir))
	b.WriteString(" build")

	return d.Runner.Run(ctx, domain.NewScript(b.String()).WithWorkingDir(srcDir))
}

// lipoCreate joins single-architecture binaries into one fat binary.
func (d *Deps) lipoCreate(ctx context.Context, output string, inputs ...string) error {
	if err := d.Ops.CreateDir(filepath.Dir(output)); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("lipo -create")
	for _, input := range inputs {
		b.WriteString(" " + quote(input))
	}
	b.WriteString(" -output " + quote(output))

	return d.Runner.Run(ctx, domain.NewScript(b.String()))
}

// createXCFramework packages a device library and a (merged) simulator
// library into one cross-architecture framework.
func (d *Deps) createXCFramework(ctx context.Context, output, headers string, libraries ...string) error {
	if err := d.Ops.CreateDir(filepath.Dir(output)); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("xcodebuild -create-xcframework")
	for _, library := range libraries {
		b.WriteString(" -library " + quote(library))
		b.WriteString(" -headers " + quote(headers))
	}
	b.WriteString(" -output " + quote(output))

	return d.Runner.Run(ctx, domain.NewScript(b.String()))
}

// cached records an immediately-cached telemetry vertex for a skipped unit
// of work.
func (d *Deps) cached(ctx context.Context, name string) {
	d.Logger.Info("using cached " + name)
	d.Telemetry.Record(ctx, name).Cached()
}
