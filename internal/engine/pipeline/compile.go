package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// libName is the crate's library target name; the compiler derives the
// artifact file names from it (libmain.a, libmain.so).
const libName = "main"

// compileSpec describes one compiler invocation.
type compileSpec struct {
	// triple is the target architecture triple, empty for the host.
	triple string
	// manifestPath points at the manifest to build, which is the
	// rewritten variant for targets that link as libraries.
	manifestPath string
	// targetDir is the architecture-scoped artifact directory.
	targetDir string
	// env holds extra environment variables for the compiler process
	// (Emscripten flags, NDK toolchain activation).
	env map[string]string
}

// compile invokes the compiler once for the spec's architecture. Artifacts
// land under the spec's target directory in the compiler's own
// <triple>/<profile> layout, so later steps can locate them
// deterministically via artifactPath.
func (d *Deps) compile(ctx context.Context, bctx *domain.Context, spec compileSpec) error {
	var b strings.Builder
	b.WriteString("cargo build")
	if flag := bctx.Variant.CargoFlag(); flag != "" {
		b.WriteString(" " + flag)
	}
	b.WriteString(" --manifest-path " + quote(spec.manifestPath))
	if spec.triple != "" {
		b.WriteString(" --target " + spec.triple)
	}

	script := domain.NewScript(b.String()).
		WithWorkingDir(bctx.SourceDir).
		WithEnv("CARGO_TARGET_DIR", spec.targetDir)
	for k, v := range spec.env {
		script = script.WithEnv(k, v)
	}

	return d.Runner.Run(ctx, script)
}

// artifactPath returns where the compiler left the named artifact for the
// given spec: <targetDir>[/<triple>]/<profile>/<artifact>.
func artifactPath(bctx *domain.Context, spec compileSpec, artifact string) string {
	dir := spec.targetDir
	if spec.triple != "" {
		dir = filepath.Join(dir, spec.triple)
	}
	return filepath.Join(dir, bctx.Variant.ID(), artifact)
}

// quote wraps a path for safe interpolation into a script body.
func quote(path string) string {
	return `"` + path + `"`
}
