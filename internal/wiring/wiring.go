// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/droidpack/internal/adapters/archive"
	_ "go.trai.ch/droidpack/internal/adapters/cas"
	_ "go.trai.ch/droidpack/internal/adapters/config"
	_ "go.trai.ch/droidpack/internal/adapters/fs"
	_ "go.trai.ch/droidpack/internal/adapters/javadoc"
	_ "go.trai.ch/droidpack/internal/adapters/logger"
	_ "go.trai.ch/droidpack/internal/adapters/shell"
	_ "go.trai.ch/droidpack/internal/adapters/telemetry"
	// Register plugin nodes.
	_ "go.trai.ch/droidpack/internal/plugin/androidarchive"
	// Register app and engine nodes.
	_ "go.trai.ch/droidpack/internal/app"
	_ "go.trai.ch/droidpack/internal/engine/scheduler"
)
