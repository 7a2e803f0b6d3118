package commands_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcelBraghetto/forge/cmd/forge/commands"
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

func newCLI(loader ports.ConfigLoader, runner ports.Runner) *commands.CLI {
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
	return commands.New(app.New(loader, deps, log, telemetry.NewNoOp()))
}

func TestRoot_UnknownTargetFailsBeforeAnyStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations on either mock: the argument error must surface
	// before configuration loading or any pipeline step.
	cli := newCLI(mocks.NewMockConfigLoader(ctrl), mocks.NewMockRunner(ctrl))

	cli.SetArgs([]string{"--target", "gamecube", "--variant", "debug"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownTarget)
}

func TestRoot_UnknownVariantFailsBeforeAnyStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli := newCLI(mocks.NewMockConfigLoader(ctrl), mocks.NewMockRunner(ctrl))

	cli.SetArgs([]string{"--target", "desktop-console", "--variant", "nightly"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestVersion_RequiresNoSelectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli := newCLI(mocks.NewMockConfigLoader(ctrl), mocks.NewMockRunner(ctrl))

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestClean_AcceptsAliasSelectors(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	stale := filepath.Join(root, "android", "out", "release", "jniLibs", "arm64-v8a", "libmain.so")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("so"), 0o644))

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(root, domain.Project{Name: "demo"}, nil)

	cli := newCLI(loader, mocks.NewMockRunner(ctrl))
	cli.SetArgs([]string{"clean", "--target", "mobile-b", "--variant", "Release"})
	require.NoError(t, cli.Execute(context.Background()))
	require.NoDirExists(t, filepath.Join(root, "android", "out", "release"))
}
