//go:build !windows

package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcelBraghetto/forge/internal/adapters/fs"
	"github.com/MarcelBraghetto/forge/internal/adapters/logger"
	"github.com/MarcelBraghetto/forge/internal/adapters/manifest"
	"github.com/MarcelBraghetto/forge/internal/adapters/telemetry"
	"github.com/MarcelBraghetto/forge/internal/app"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
	"github.com/MarcelBraghetto/forge/internal/core/ports/mocks"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
	"github.com/MarcelBraghetto/forge/internal/engine/pipeline"
)

func newApp(loader ports.ConfigLoader, runner ports.Runner) *app.App {
	log := logger.New()
	log.SetOutput(io.Discard)

	ops := fs.NewOps()
	deps := &pipeline.Deps{
		Logger:    log,
		Runner:    runner,
		Telemetry: telemetry.NewNoOp(),
		Ops:       ops,
		Collector: collect.NewCollector(ops),
		Rewriter:  manifest.NewRewriter(),
	}
	return app.New(loader, deps, log, telemetry.NewNoOp())
}

func TestApp_SelectorErrorsSurfaceBeforeAnyWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: selector validation must fail before the loader or
	// any pipeline step is touched.
	a := newApp(mocks.NewMockConfigLoader(ctrl), mocks.NewMockRunner(ctrl))

	err := a.Build(context.Background(), "gamecube", "debug")
	require.ErrorIs(t, err, domain.ErrUnknownTarget)

	err = a.Build(context.Background(), "browser", "fastest")
	require.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestApp_BuildDesktopConsole(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	project := domain.Project{Name: "demo"}

	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(root, project, nil)

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Script) error {
			artifact := filepath.Join(root, "desktop-console", ".build-work", "rust", "release", "demo")
			require.NoError(t, os.MkdirAll(filepath.Dir(artifact), 0o755))
			return os.WriteFile(artifact, []byte("bin"), 0o755)
		})

	a := newApp(loader, runner)
	// Variant selectors are case-insensitive.
	require.NoError(t, a.Build(context.Background(), "desktop-console", "RELEASE"))
	require.FileExists(t, filepath.Join(root, "desktop-console", "out", "release", "demo"))
}

func TestApp_CleanAcceptsAliasSelectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	stale := filepath.Join(root, "browser", "out", "debug", "stale.wasm")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(root, domain.Project{Name: "demo"}, nil)

	a := newApp(loader, mocks.NewMockRunner(ctrl))
	require.NoError(t, a.Clean(context.Background(), "web", "debug"))
	require.NoDirExists(t, filepath.Join(root, "browser", "out", "debug"))
}
