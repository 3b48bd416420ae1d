package ports

import "go.trai.ch/droidpack/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash computes the input hash for a given task.
	ComputeInputHash(task *domain.Task) (string, error)
	// ComputeOutputHash computes the hash of the task outputs.
	// Missing outputs are reported as an error.
	ComputeOutputHash(task *domain.Task) (string, error)
}
