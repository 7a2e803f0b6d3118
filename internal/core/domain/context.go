package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Context carries the resolved paths and selections for one build
// invocation. It is constructed once at process start and never mutated;
// pipelines read it but do not write to it.
type Context struct {
	// RootDir is the project root (the directory holding forge.yaml).
	RootDir string
	// AssetsDir holds the runtime assets shipped with every target.
	AssetsDir string
	// SourceDir is the application crate (Cargo.toml and src/).
	SourceDir string
	// HomeDir is the selected target's home directory under the root.
	HomeDir string
	// WorkDir is the target's working/cache directory
	// (<home>/.build-work): downloaded dependencies, per-arch outputs.
	WorkDir string
	// FrameworksDir is where merged native-dependency packages land
	// (<work>/Frameworks).
	FrameworksDir string
	// Target is the selected pipeline.
	Target Target
	// Variant is the selected build configuration.
	Variant Variant
	// Project is the loaded project configuration.
	Project Project
}

// NewContext resolves a Context from the project root. All paths are made
// absolute before any pipeline step can observe them.
func NewContext(rootDir string, target Target, variant Variant, project Project) (*Context, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "path", rootDir)
	}

	home := filepath.Join(root, target.ID())
	work := filepath.Join(home, ".build-work")

	return &Context{
		RootDir:       root,
		AssetsDir:     filepath.Join(root, "assets"),
		SourceDir:     filepath.Join(root, "app"),
		HomeDir:       home,
		WorkDir:       work,
		FrameworksDir: filepath.Join(work, "Frameworks"),
		Target:        target,
		Variant:       variant,
		Project:       project,
	}, nil
}

// ManifestPath returns the application crate's dependency manifest.
func (c *Context) ManifestPath() string {
	return filepath.Join(c.SourceDir, "Cargo.toml")
}

// ArtifactsDir returns the per-architecture compiled-artifact directory for
// the given target triple. Each architecture gets a deterministic,
// arch-named subdirectory so later steps can locate outputs without
// re-deriving naming logic.
func (c *Context) ArtifactsDir(triple string) string {
	if triple == "" {
		return filepath.Join(c.WorkDir, "rust")
	}
	return filepath.Join(c.WorkDir, "rust", triple)
}
