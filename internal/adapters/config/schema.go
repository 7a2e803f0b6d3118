package config

// Forgefile represents the structure of the forge.yaml configuration file.
type Forgefile struct {
	Name         string          `yaml:"name"`
	BundleID     string          `yaml:"bundleId"`
	Canvas       CanvasDTO       `yaml:"canvas"`
	Dependencies DependenciesDTO `yaml:"dependencies"`
}

// CanvasDTO is the browser display size.
type CanvasDTO struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DependenciesDTO names the native dependency source archives.
type DependenciesDTO struct {
	SDL2      DependencyDTO `yaml:"sdl2"`
	SDL2Image DependencyDTO `yaml:"sdl2Image"`
}

// DependencyDTO is one downloadable native dependency.
type DependencyDTO struct {
	Version string `yaml:"version"`
	URL     string `yaml:"url"`
}
