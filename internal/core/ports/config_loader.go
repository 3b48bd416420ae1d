package ports

import "go.trai.ch/droidpack/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the project description. When path is a directory, droidpack.yaml
	// is searched for in it and its parents. A file path is read directly.
	Load(path string) (*domain.ProjectSpec, error)
}
