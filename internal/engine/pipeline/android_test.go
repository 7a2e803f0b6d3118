//go:build !windows

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports/mocks"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

func TestAndroid_BuildStagesOneLibraryPerABI(t *testing.T) {
	ctrl := gomock.NewController(t)
	bctx := testContext(t, domain.TargetAndroid, domain.VariantDebug)

	manifest := "[package]\nname = \"demo\"\nversion = \"1.0.0\"\n"
	require.NoError(t, os.MkdirAll(bctx.SourceDir, 0o755))
	require.NoError(t, os.WriteFile(bctx.ManifestPath(), []byte(manifest), 0o644))

	fetcher := mocks.NewMockFetcher(ctrl)
	for _, dep := range nativeDeps(bctx.Project) {
		src := filepath.Join(bctx.WorkDir, dep.CacheName())
		require.NoError(t, os.MkdirAll(src, 0o755))
		fetcher.EXPECT().
			Fetch(gomock.Any(), dep.URL, dep.CacheName(), bctx.WorkDir).
			Return(src, nil)
	}

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, script domain.Script) error {
			content := script.Content()
			if strings.HasPrefix(content, "rustup target add") {
				for _, arch := range androidArchs() {
					require.Contains(t, content, arch.triple)
				}
				return nil
			}

			// One compiler run per architecture, with the NDK toolchain
			// activated inside the script body.
			require.Contains(t, content, "$ANDROID_NDK_HOME")
			require.Contains(t, content, "cargo build")
			for _, arch := range androidArchs() {
				if !strings.Contains(content, "--target "+arch.triple) {
					continue
				}
				out := filepath.Join(bctx.ArtifactsDir(""), arch.triple, "debug", "libmain.so")
				writeArtifact(t, out)
				return nil
			}
			t.Fatalf("unexpected script: %s", content)
			return nil
		}).
		Times(5)

	deps := testDeps(runner, fetcher)
	require.NoError(t, deps.ForTarget(domain.TargetAndroid).Build(context.Background(), bctx))

	// The manifest variant links as a dynamic library.
	rewritten, err := os.ReadFile(filepath.Join(bctx.WorkDir, "manifest", "Cargo.toml"))
	require.NoError(t, err)
	require.Contains(t, string(rewritten), "cdylib")

	out := collect.OutputDir(bctx)
	for _, abi := range []string{"arm64-v8a", "armeabi-v7a", "x86_64", "x86"} {
		require.FileExists(t, filepath.Join(out, "jniLibs", abi, "libmain.so"))
	}

	// Debug places assets as a symlink next to the libraries.
	assets, err := os.Lstat(filepath.Join(out, "assets"))
	require.NoError(t, err)
	require.NotZero(t, assets.Mode()&os.ModeSymlink)

	// The fetched native sources are linked into the host project's jni
	// tree, and the collected jniLibs into its source set.
	for _, dep := range nativeDeps(bctx.Project) {
		link, err := os.Lstat(filepath.Join(bctx.HomeDir, "app", "jni", dep.Name))
		require.NoError(t, err)
		require.NotZero(t, link.Mode()&os.ModeSymlink)
	}
	link, err := os.Lstat(filepath.Join(bctx.HomeDir, "app", "src", "main", "jniLibs"))
	require.NoError(t, err)
	require.NotZero(t, link.Mode()&os.ModeSymlink)
}
