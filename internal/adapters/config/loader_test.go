package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarcelBraghetto/forge/internal/adapters/config"
	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

const sampleConfig = `
name: a-simple-triangle
bundleId: io.github.marcelbraghetto.ast
canvas:
  width: 600
  height: 360
dependencies:
  sdl2:
    version: 2.28.5
    url: https://www.libsdl.org/release/SDL2-2.28.5.zip
  sdl2Image:
    version: 2.8.2
    url: https://github.com/libsdl-org/SDL_image/releases/download/release-2.8.2/SDL2_image-2.8.2.zip
`

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, sampleConfig)

	loader := config.NewLoader()
	gotRoot, project, err := loader.Load(root)
	require.NoError(t, err)
	require.Equal(t, root, gotRoot)

	require.Equal(t, "a-simple-triangle", project.Name)
	require.Equal(t, "io.github.marcelbraghetto.ast", project.BundleID)
	require.Equal(t, domain.Canvas{Width: 600, Height: 360}, project.Canvas)
	require.Equal(t, "SDL2-2.28.5", project.SDL2.CacheName())
	require.Equal(t, "SDL2_image-2.8.2", project.SDL2Image.CacheName())
	require.Contains(t, project.SDL2.URL, "libsdl.org")
}

func TestLoader_Load_DiscoversRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, sampleConfig)

	nested := filepath.Join(root, "app", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	loader := config.NewLoader()
	gotRoot, _, err := loader.Load(nested)
	require.NoError(t, err)
	require.Equal(t, root, gotRoot)
}

func TestLoader_Load_NotFound(t *testing.T) {
	loader := config.NewLoader()
	_, _, err := loader.Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestLoader_Load_CanvasDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "name: demo\n")

	loader := config.NewLoader()
	_, project, err := loader.Load(root)
	require.NoError(t, err)
	require.Equal(t, domain.Canvas{Width: 640, Height: 480}, project.Canvas)
}

func TestLoader_Load_NameRequired(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "bundleId: x\n")

	loader := config.NewLoader()
	_, _, err := loader.Load(root)
	require.Error(t, err)
}
