// Package manifest produces build-specific variants of the application
// crate's dependency manifest.
//
// The same source must be linked as a standalone executable on desktop
// targets and as a static or dynamic library consumed by a host native
// project on mobile targets. That is a build-time decision, not a
// source-code decision, so it is externalized into generated manifest
// variants rather than branching the crate itself.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// Crate artifact kinds understood by the compiler.
const (
	CrateTypeStaticLib  = "staticlib"
	CrateTypeDynamicLib = "cdylib"
)

// Rewriter copies a Cargo manifest with an overridden artifact kind.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite reads the manifest at manifestPath, replaces the lib crate-type
// with the given kind, writes the result to destDir/Cargo.toml and returns
// that path. The compiler resolves the package root from the manifest's
// own directory, so the relocated variant anchors the library source path
// and any path dependencies back at the original crate as absolute paths.
// Every other table and field passes through untouched.
func (r *Rewriter) Rewrite(manifestPath, crateType, destDir string) (string, error) {
	data, err := os.ReadFile(manifestPath) //nolint:gosec // project manifest
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", manifestPath)
	}

	crateRoot, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve crate root"), "path", manifestPath)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", manifestPath)
	}

	lib, ok := doc["lib"].(map[string]any)
	if !ok {
		lib = make(map[string]any)
		doc["lib"] = lib
	}
	lib["crate-type"] = []string{crateType}

	libPath := "src/lib.rs"
	if p, ok := lib["path"].(string); ok {
		libPath = p
	}
	lib["path"] = anchor(crateRoot, libPath)

	for _, table := range []string{"dependencies", "dev-dependencies", "build-dependencies"} {
		deps, ok := doc[table].(map[string]any)
		if !ok {
			continue
		}
		for _, dep := range deps {
			spec, ok := dep.(map[string]any)
			if !ok {
				continue
			}
			if p, ok := spec["path"].(string); ok {
				spec["path"] = anchor(crateRoot, p)
			}
		}
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode manifest")
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create manifest directory"), "path", destDir)
	}

	destPath := filepath.Join(destDir, "Cargo.toml")
	if err := os.WriteFile(destPath, out, 0o644); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", destPath)
	}
	return destPath, nil
}

// anchor resolves a manifest-relative source location against the crate
// root, leaving already-absolute paths alone.
func anchor(crateRoot, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(crateRoot, path)
}
