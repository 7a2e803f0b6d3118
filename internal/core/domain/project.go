package domain

// Project is the decoded forge.yaml configuration: everything about the
// application being built that is not derivable from the fixed layout.
type Project struct {
	// Name is the application name, used for the compiled binary, the
	// macOS bundle and the generated loader document title.
	Name string
	// BundleID is the reverse-DNS identifier stamped into bundle metadata.
	BundleID string
	// Canvas is the fixed display size embedded into the browser loader.
	Canvas Canvas
	// SDL2 and SDL2Image locate the native dependency source archives.
	SDL2      Dependency
	SDL2Image Dependency
}

// Canvas is the browser display size in CSS pixels.
type Canvas struct {
	Width  int
	Height int
}

// Dependency names one downloadable native dependency. The version is part
// of the cache key: the unpacked source and any compiled packages live in
// directories named CacheName, so bumping the version invalidates the cache
// by construction.
type Dependency struct {
	Name    string
	Version string
	URL     string
}

// CacheName is the directory name used for the memoized acquisition of this
// dependency, e.g. "SDL2-2.28.5".
func (d Dependency) CacheName() string {
	return d.Name + "-" + d.Version
}
