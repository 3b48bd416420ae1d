package app

import (
	"go.trai.ch/droidpack/internal/adapters/logger" //nolint:depguard // Wired in app layer
)

// Components holds what the command line needs from the dependency graph.
type Components struct {
	App    *App
	Logger *logger.Logger
}
