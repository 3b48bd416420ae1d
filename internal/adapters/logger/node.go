package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidpack/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the host logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// AdapterNodeID is the unique identifier for the plugin-facing logger Graft node.
	AdapterNodeID graft.ID = "adapter.logger.adapter"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        AdapterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			host, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAdapter(host), nil
		},
	})
}
