package javadoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droidpack/internal/adapters/fs"    //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/shell" //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/core/ports"
)

// NodeID is the unique identifier for the javadoc tool Graft node.
const NodeID graft.ID = "adapter.javadoc"

func init() {
	graft.Register(graft.Node[ports.DocTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.DocTool, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewDocTool(executor, walker), nil
		},
	})
}
