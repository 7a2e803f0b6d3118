package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"github.com/MarcelBraghetto/forge/internal/adapters/manifest"
)

const sampleManifest = `
[package]
name = "app"
version = "0.1.0"
edition = "2021"

[lib]
name = "main"
crate-type = ["bin"]

[dependencies]
sdl2 = "0.35"
gl = "0.14"
`

func TestRewriter_Rewrite_ReplacesOnlyCrateType(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Cargo.toml")
	require.NoError(t, os.WriteFile(src, []byte(sampleManifest), 0o644))

	r := manifest.NewRewriter()
	dest, err := r.Rewrite(src, manifest.CrateTypeStaticLib, filepath.Join(root, "work"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "work", "Cargo.toml"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))

	lib := doc["lib"].(map[string]any)
	require.Equal(t, []any{"staticlib"}, lib["crate-type"])
	require.Equal(t, "main", lib["name"], "unrelated lib fields must pass through")

	pkg := doc["package"].(map[string]any)
	require.Equal(t, "app", pkg["name"])
	require.Equal(t, "2021", pkg["edition"])

	deps := doc["dependencies"].(map[string]any)
	require.Equal(t, "0.35", deps["sdl2"])
	require.Equal(t, "0.14", deps["gl"])

	// The original stays untouched.
	original, err := os.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, sampleManifest, string(original))
}

func TestRewriter_Rewrite_AddsLibTableWhenMissing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Cargo.toml")
	require.NoError(t, os.WriteFile(src, []byte("[package]\nname = \"app\"\n"), 0o644))

	r := manifest.NewRewriter()
	dest, err := r.Rewrite(src, manifest.CrateTypeDynamicLib, filepath.Join(root, "work"))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))
	lib := doc["lib"].(map[string]any)
	require.Equal(t, []any{"cdylib"}, lib["crate-type"])
}

// The variant is written outside the crate and the compiler resolves the
// package root from the manifest's own directory, so a relocated manifest
// that leaves source locations relative can never find the crate sources.
func TestRewriter_Rewrite_AnchorsSourcesAtOriginalCrate(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Cargo.toml")
	body := `
[package]
name = "app"
version = "0.1.0"

[lib]
name = "main"

[dependencies]
engine = { path = "../engine" }
sdl2 = "0.35"
`
	require.NoError(t, os.WriteFile(src, []byte(body), 0o644))

	r := manifest.NewRewriter()
	dest, err := r.Rewrite(src, manifest.CrateTypeStaticLib, filepath.Join(root, "work"))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))

	lib := doc["lib"].(map[string]any)
	require.Equal(t, filepath.Join(root, "src", "lib.rs"), lib["path"])

	deps := doc["dependencies"].(map[string]any)
	engine := deps["engine"].(map[string]any)
	require.Equal(t, filepath.Join(filepath.Dir(root), "engine"), engine["path"])
	require.Equal(t, "0.35", deps["sdl2"], "registry dependencies pass through")
}

// An explicit lib.path is kept, just made absolute.
func TestRewriter_Rewrite_PreservesExplicitLibPath(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Cargo.toml")
	body := "[package]\nname = \"app\"\n\n[lib]\nname = \"main\"\npath = \"src/core.rs\"\n"
	require.NoError(t, os.WriteFile(src, []byte(body), 0o644))

	r := manifest.NewRewriter()
	dest, err := r.Rewrite(src, manifest.CrateTypeDynamicLib, filepath.Join(root, "work"))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))
	lib := doc["lib"].(map[string]any)
	require.Equal(t, filepath.Join(root, "src", "core.rs"), lib["path"])
}

func TestRewriter_Rewrite_MissingManifest(t *testing.T) {
	r := manifest.NewRewriter()
	_, err := r.Rewrite(filepath.Join(t.TempDir(), "Cargo.toml"), manifest.CrateTypeStaticLib, t.TempDir())
	require.Error(t, err)
}
