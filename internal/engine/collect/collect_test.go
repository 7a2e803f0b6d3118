//go:build !windows

package collect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarcelBraghetto/forge/internal/adapters/fs"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

func newContext(t *testing.T, variant domain.Variant) *domain.Context {
	t.Helper()
	bctx, err := domain.NewContext(t.TempDir(), domain.TargetDesktopConsole, variant, domain.Project{Name: "demo"})
	require.NoError(t, err)
	return bctx
}

func TestOutputDir_DerivedFromVariant(t *testing.T) {
	debug := newContext(t, domain.VariantDebug)
	require.Equal(t, filepath.Join(debug.HomeDir, "out", "debug"), collect.OutputDir(debug))

	release := newContext(t, domain.VariantRelease)
	require.Equal(t, filepath.Join(release.HomeDir, "out", "release"), collect.OutputDir(release))
}

func TestCollector_Collect_MixedSources(t *testing.T) {
	bctx := newContext(t, domain.VariantDebug)
	c := collect.NewCollector(fs.NewOps())

	assets := filepath.Join(bctx.RootDir, "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "mesh.obj"), []byte("v 0 0 0"), 0o644))

	binary := filepath.Join(bctx.RootDir, "demo")
	require.NoError(t, os.WriteFile(binary, []byte("bin"), 0o755))

	require.NoError(t, c.Collect(bctx, assets, binary))

	out := collect.OutputDir(bctx)
	// The directory appears as a same-named child, the file at the top
	// level; neither merged nor renamed.
	require.FileExists(t, filepath.Join(out, "assets", "mesh.obj"))
	require.FileExists(t, filepath.Join(out, "demo"))
	require.NoFileExists(t, filepath.Join(out, "mesh.obj"))
}

func TestCollector_CleanThenCollect_RemovesStaleArtifacts(t *testing.T) {
	bctx := newContext(t, domain.VariantDebug)
	c := collect.NewCollector(fs.NewOps())

	out := collect.OutputDir(bctx)
	require.NoError(t, os.MkdirAll(out, 0o755))
	stale := filepath.Join(out, "stale-artifact")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	require.NoError(t, c.Clean(bctx))

	binary := filepath.Join(bctx.RootDir, "demo")
	require.NoError(t, os.WriteFile(binary, []byte("bin"), 0o755))
	require.NoError(t, c.Collect(bctx, binary))

	require.NoFileExists(t, stale)
	require.FileExists(t, filepath.Join(out, "demo"))
}

func TestCollector_Clean_MissingOutputIsNoOp(t *testing.T) {
	bctx := newContext(t, domain.VariantRelease)
	c := collect.NewCollector(fs.NewOps())
	require.NoError(t, c.Clean(bctx))
}

func TestCollector_Collect_MissingSourceAborts(t *testing.T) {
	bctx := newContext(t, domain.VariantDebug)
	c := collect.NewCollector(fs.NewOps())

	err := c.Collect(bctx, filepath.Join(bctx.RootDir, "missing"))
	require.Error(t, err)
}
