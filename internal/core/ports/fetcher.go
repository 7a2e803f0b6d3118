package ports

import "context"

// Fetcher acquires remote zip archives into a deterministic cache location.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch ensures parentDir/name exists and contains the unzipped
	// archive contents, returning that path. If the directory already
	// exists the call returns immediately without touching the network:
	// the directory's presence is the sole completion marker, so callers
	// must pick names that vary with the dependency version.
	Fetch(ctx context.Context, url, name, parentDir string) (string, error)
}
