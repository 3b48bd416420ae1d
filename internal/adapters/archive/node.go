package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidpack/internal/adapters/fs" //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/core/ports"
)

// NodeID is the unique identifier for the archiver Graft node.
const NodeID graft.ID = "adapter.archiver"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(walker), nil
		},
	})
}
