package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidpack/internal/adapters/fs"     //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/core/ports"
)

// NodeID is the unique identifier for the configuration loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.AdapterNodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, walker), nil
		},
	})
}
