// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/MarcelBraghetto/forge/internal/adapters/config"
	_ "github.com/MarcelBraghetto/forge/internal/adapters/fetch"
	_ "github.com/MarcelBraghetto/forge/internal/adapters/fs"
	_ "github.com/MarcelBraghetto/forge/internal/adapters/logger"
	_ "github.com/MarcelBraghetto/forge/internal/adapters/manifest"
	_ "github.com/MarcelBraghetto/forge/internal/adapters/shell"
	_ "github.com/MarcelBraghetto/forge/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/MarcelBraghetto/forge/internal/app"
	_ "github.com/MarcelBraghetto/forge/internal/engine/collect"
	_ "github.com/MarcelBraghetto/forge/internal/engine/pipeline"
)
