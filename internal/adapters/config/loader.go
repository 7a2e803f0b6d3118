// Package config provides the project configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/MarcelBraghetto/forge/internal/core/domain"
)

// Filename is the project configuration file the loader discovers.
const Filename = "forge.yaml"

// Default canvas size when the configuration does not specify one.
const (
	defaultCanvasWidth  = 640
	defaultCanvasHeight = 480
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file found by
// walking upward from the starting directory.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load discovers the project root and decodes its configuration.
func (l *FileConfigLoader) Load(startDir string) (string, domain.Project, error) {
	root, err := discoverRoot(startDir)
	if err != nil {
		return "", domain.Project{}, err
	}

	project, err := load(filepath.Join(root, Filename))
	if err != nil {
		return "", domain.Project{}, err
	}
	return root, project, nil
}

// discoverRoot walks upward from startDir until it finds the configuration
// file, mirroring how version-control tools locate their repository root.
func discoverRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve starting directory")
	}

	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, "failed to probe for configuration"), "path", candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrProjectNotFound, "start_dir", startDir)
		}
		dir = parent
	}
}

func load(path string) (domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // discovered project file
	if err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var forgefile Forgefile
	if err := yaml.Unmarshal(data, &forgefile); err != nil {
		return domain.Project{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if forgefile.Name == "" {
		return domain.Project{}, zerr.With(zerr.New("project name is required"), "path", path)
	}

	canvas := domain.Canvas{
		Width:  forgefile.Canvas.Width,
		Height: forgefile.Canvas.Height,
	}
	if canvas.Width <= 0 {
		canvas.Width = defaultCanvasWidth
	}
	if canvas.Height <= 0 {
		canvas.Height = defaultCanvasHeight
	}

	return domain.Project{
		Name:     forgefile.Name,
		BundleID: forgefile.BundleID,
		Canvas:   canvas,
		SDL2: domain.Dependency{
			Name:    "SDL2",
			Version: forgefile.Dependencies.SDL2.Version,
			URL:     forgefile.Dependencies.SDL2.URL,
		},
		SDL2Image: domain.Dependency{
			Name:    "SDL2_image",
			Version: forgefile.Dependencies.SDL2Image.Version,
			URL:     forgefile.Dependencies.SDL2Image.URL,
		},
	}, nil
}
