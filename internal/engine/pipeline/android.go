package pipeline

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MarcelBraghetto/forge/internal/adapters/manifest"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// androidAPILevel is the minimum platform level the NDK toolchain
// compiles against.
const androidAPILevel = "24"

// androidArch maps one compilation target onto the ABI directory name the
// host Gradle project expects and the NDK compiler driver for it.
type androidArch struct {
	triple    string
	abi       string
	clang     string
	linkerVar string
}

func androidArchs() []androidArch {
	return []androidArch{
		{
			triple:    "aarch64-linux-android",
			abi:       "arm64-v8a",
			clang:     "aarch64-linux-android" + androidAPILevel + "-clang",
			linkerVar: "CARGO_TARGET_AARCH64_LINUX_ANDROID_LINKER",
		},
		{
			triple:    "armv7-linux-androideabi",
			abi:       "armeabi-v7a",
			clang:     "armv7a-linux-androideabi" + androidAPILevel + "-clang",
			linkerVar: "CARGO_TARGET_ARMV7_LINUX_ANDROIDEABI_LINKER",
		},
		{
			triple:    "x86_64-linux-android",
			abi:       "x86_64",
			clang:     "x86_64-linux-android" + androidAPILevel + "-clang",
			linkerVar: "CARGO_TARGET_X86_64_LINUX_ANDROID_LINKER",
		},
		{
			triple:    "i686-linux-android",
			abi:       "x86",
			clang:     "i686-linux-android" + androidAPILevel + "-clang",
			linkerVar: "CARGO_TARGET_I686_LINUX_ANDROID_LINKER",
		},
	}
}

// ndkHostTag names the prebuilt toolchain directory for the host
// operating system inside an NDK installation.
func ndkHostTag() string {
	if runtime.GOOS == "darwin" {
		return "darwin-x86_64"
	}
	return "linux-x86_64"
}

// android builds the application as a dynamic library per ABI and wires
// the results into the host Gradle project. The IDE owns deployment, so
// there is no launch step.
type android struct {
	deps *Deps
}

func (p *android) Name() string {
	return domain.TargetAndroid.ID()
}

func (p *android) Build(ctx context.Context, bctx *domain.Context) error {
	return p.deps.runSteps(ctx, []step{
		{"install toolchain", func(ctx context.Context) error {
			triples := make([]string, 0, len(androidArchs()))
			for _, arch := range androidArchs() {
				triples = append(triples, arch.triple)
			}
			return p.deps.installToolchain(ctx, triples...)
		}},
		{"prepare native sources", func(ctx context.Context) error {
			return p.prepareNativeSources(ctx, bctx)
		}},
		{"compile", func(ctx context.Context) error {
			return p.compile(ctx, bctx)
		}},
		{"create output", func(ctx context.Context) error {
			return p.createOutput(ctx, bctx)
		}},
	})
}

func (p *android) Run(ctx context.Context, bctx *domain.Context) error {
	if err := p.Build(ctx, bctx); err != nil {
		return err
	}
	p.deps.Logger.Info("open the host Gradle project to deploy; there is no direct launch for this target")
	return nil
}

func (p *android) libArtifact() string {
	return "lib" + libName + ".so"
}

// prepareNativeSources fetches the native dependency sources and links
// them into the host project's jni directory, where the NDK build picks
// them up and compiles them itself.
func (p *android) prepareNativeSources(ctx context.Context, bctx *domain.Context) error {
	jniDir := filepath.Join(bctx.HomeDir, "app", "jni")
	if err := p.deps.Ops.CreateDir(jniDir); err != nil {
		return err
	}

	for _, dep := range nativeDeps(bctx.Project) {
		src, err := p.deps.Fetcher.Fetch(ctx, dep.URL, dep.CacheName(), bctx.WorkDir)
		if err != nil {
			return err
		}
		if err := p.deps.Ops.Symlink(src, filepath.Join(jniDir, dep.Name)); err != nil {
			return err
		}
	}
	return nil
}

// compile rewrites the manifest to emit a dynamic library, then compiles
// it once per ABI with the NDK toolchain activated inside the script. The
// NDK location is resolved from ANDROID_NDK_HOME at script run time, so a
// missing installation fails the script before the compiler starts.
func (p *android) compile(ctx context.Context, bctx *domain.Context) error {
	rewritten, err := p.deps.Rewriter.Rewrite(
		bctx.ManifestPath(),
		manifest.CrateTypeDynamicLib,
		filepath.Join(bctx.WorkDir, "manifest"),
	)
	if err != nil {
		return err
	}

	for _, arch := range androidArchs() {
		var b strings.Builder
		b.WriteString(`toolchain="$ANDROID_NDK_HOME/toolchains/llvm/prebuilt/` + ndkHostTag() + `/bin"` + "\n")
		b.WriteString(`export PATH="$toolchain:$PATH"` + "\n")
		b.WriteString("export " + arch.linkerVar + "=" + arch.clang + "\n")
		b.WriteString("export CC=" + arch.clang + "\n")
		b.WriteString("export AR=llvm-ar\n")
		b.WriteString("cargo build")
		if flag := bctx.Variant.CargoFlag(); flag != "" {
			b.WriteString(" " + flag)
		}
		b.WriteString(" --manifest-path " + quote(rewritten))
		b.WriteString(" --target " + arch.triple)

		script := domain.NewScript(b.String()).
			WithWorkingDir(bctx.SourceDir).
			WithEnv("CARGO_TARGET_DIR", bctx.ArtifactsDir(""))
		if err := p.deps.Runner.Run(ctx, script); err != nil {
			return err
		}
	}
	return nil
}

// createOutput stages one libmain.so per ABI directory, collects the
// staged tree together with the assets, and links the libraries into the
// host Gradle project as its jniLibs source set.
func (p *android) createOutput(_ context.Context, bctx *domain.Context) error {
	staging := filepath.Join(bctx.WorkDir, "jniLibs")
	if err := p.deps.Ops.Delete(staging); err != nil {
		return err
	}

	artifact := p.libArtifact()
	for _, arch := range androidArchs() {
		abiDir := filepath.Join(staging, arch.abi)
		if err := p.deps.Ops.CreateDir(abiDir); err != nil {
			return err
		}

		spec := compileSpec{triple: arch.triple, targetDir: bctx.ArtifactsDir("")}
		compiled := artifactPath(bctx, spec, artifact)
		if err := p.deps.Ops.Copy(compiled, filepath.Join(abiDir, artifact)); err != nil {
			return err
		}
	}

	if err := p.deps.Collector.Clean(bctx); err != nil {
		return err
	}
	if err := p.deps.Collector.Collect(bctx, staging); err != nil {
		return err
	}
	if err := p.deps.placeAssets(bctx, collect.OutputDir(bctx)); err != nil {
		return err
	}

	link := filepath.Join(bctx.HomeDir, "app", "src", "main", "jniLibs")
	if err := p.deps.Ops.CreateDir(filepath.Dir(link)); err != nil {
		return err
	}
	return p.deps.Ops.Symlink(filepath.Join(collect.OutputDir(bctx), "jniLibs"), link)
}
