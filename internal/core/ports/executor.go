package ports

import (
	"context"

	"go.trai.ch/droidpack/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the command and waits for it to finish.
	// It returns an error carrying the exit code if the command fails.
	Run(ctx context.Context, cmd domain.Command) error
}

// Archiver packages file trees into archives.
type Archiver interface {
	// Archive writes the archive described by spec.
	Archive(ctx context.Context, spec *domain.ArchiveSpec) error
}

// DocTool generates API documentation.
type DocTool interface {
	// Generate runs the documentation tool described by spec.
	Generate(ctx context.Context, spec *domain.JavadocSpec) error
}
