package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// plistTemplate describes the application bundle to the desktop shell.
var plistTemplate = template.Must(template.New("plist").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleExecutable</key>
	<string>{{.Name}}</string>
	<key>CFBundleIdentifier</key>
	<string>{{.BundleID}}</string>
	<key>CFBundleName</key>
	<string>{{.Name}}</string>
	<key>CFBundlePackageType</key>
	<string>APPL</string>
	<key>CFBundleInfoDictionaryVersion</key>
	<string>6.0</string>
	<key>CFBundleShortVersionString</key>
	<string>1.0.0</string>
	<key>CFBundleVersion</key>
	<string>1</string>
	<key>NSHighResolutionCapable</key>
	<true/>
</dict>
</plist>
`))

// infoPlist renders the bundle descriptor for the project.
func infoPlist(project domain.Project) (string, error) {
	var b strings.Builder
	if err := plistTemplate.Execute(&b, project); err != nil {
		return "", zerr.Wrap(err, "failed to render bundle descriptor")
	}
	return b.String(), nil
}

// desktopBundled builds the host-platform application bundle with the
// native dependencies embedded as dynamic libraries.
type desktopBundled struct {
	deps *Deps
}

func (p *desktopBundled) Name() string {
	return domain.TargetDesktopBundled.ID()
}

func (p *desktopBundled) Build(ctx context.Context, bctx *domain.Context) error {
	return p.deps.runSteps(ctx, []step{
		{"prepare frameworks", func(ctx context.Context) error {
			return p.deps.prepareMacOSDylibs(ctx, bctx)
		}},
		{"compile", func(ctx context.Context) error {
			return p.deps.compile(ctx, bctx, p.spec(bctx))
		}},
		{"assemble bundle", func(ctx context.Context) error {
			return p.assembleBundle(ctx, bctx)
		}},
		{"create output", func(ctx context.Context) error {
			return p.createOutput(ctx, bctx)
		}},
	})
}

func (p *desktopBundled) Run(ctx context.Context, bctx *domain.Context) error {
	if err := p.Build(ctx, bctx); err != nil {
		return err
	}
	name := bctx.Project.Name
	binaryDir := filepath.Join(collect.OutputDir(bctx), name+".app", "Contents", "MacOS")
	return p.deps.launchBinary(ctx, binaryDir, name)
}

func (p *desktopBundled) spec(bctx *domain.Context) compileSpec {
	return compileSpec{
		manifestPath: bctx.ManifestPath(),
		targetDir:    bctx.ArtifactsDir(""),
	}
}

// bundleDir is the bundle assembly location inside the working directory.
// The finished bundle is collected from here, so a failed assembly never
// pollutes the output.
func (p *desktopBundled) bundleDir(bctx *domain.Context) string {
	return filepath.Join(bctx.WorkDir, bctx.Project.Name+".app")
}

// assembleBundle lays out <Name>.app from scratch on every build: the
// compiled binary under Contents/MacOS with its library search path
// rewritten to the embedded Frameworks directory, the prepared dynamic
// libraries under Contents/Frameworks, the descriptor and the assets
// under Contents/Resources.
func (p *desktopBundled) assembleBundle(ctx context.Context, bctx *domain.Context) error {
	bundle := p.bundleDir(bctx)
	if err := p.deps.Ops.Delete(bundle); err != nil {
		return err
	}

	contents := filepath.Join(bundle, "Contents")
	macOSDir := filepath.Join(contents, "MacOS")
	resourcesDir := filepath.Join(contents, "Resources")
	frameworksDir := filepath.Join(contents, "Frameworks")
	for _, dir := range []string{macOSDir, resourcesDir, frameworksDir} {
		if err := p.deps.Ops.CreateDir(dir); err != nil {
			return err
		}
	}

	name := bctx.Project.Name
	binary := filepath.Join(macOSDir, name)
	if err := p.deps.Ops.Copy(artifactPath(bctx, p.spec(bctx), name), binary); err != nil {
		return err
	}
	if err := p.deps.Ops.ApplyExecutable(binary); err != nil {
		return err
	}

	// The binary must resolve its bundled libraries relative to its own
	// installed location, not the build-time paths.
	rpath := domain.NewScript("install_name_tool -add_rpath @executable_path/../Frameworks " + quote(binary))
	if err := p.deps.Runner.Run(ctx, rpath); err != nil {
		return err
	}

	for _, lib := range appleLibs(bctx.Project) {
		source := filepath.Join(bctx.FrameworksDir, lib.dylibArtifact)
		if err := p.deps.Ops.Copy(source, filepath.Join(frameworksDir, lib.dylibArtifact)); err != nil {
			return err
		}
	}

	plist, err := infoPlist(bctx.Project)
	if err != nil {
		return err
	}
	if err := p.deps.Ops.WriteString(plist, filepath.Join(contents, "Info.plist")); err != nil {
		return err
	}

	return p.deps.placeAssets(bctx, resourcesDir)
}

func (p *desktopBundled) createOutput(_ context.Context, bctx *domain.Context) error {
	if err := p.deps.Collector.Clean(bctx); err != nil {
		return err
	}
	return p.deps.Collector.Collect(bctx, p.bundleDir(bctx))
}
