package ports

import "github.com/MarcelBraghetto/forge/internal/core/domain"

// ConfigLoader discovers and loads the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks upward from startDir looking for the project
	// configuration file and returns the project root directory alongside
	// the decoded configuration.
	Load(startDir string) (string, domain.Project, error)
}
