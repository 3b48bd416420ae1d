package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/droidpack/internal/adapters/archive"   //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/cas"       //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/fs"        //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/javadoc"   //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/logger"    //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/adapters/telemetry" //nolint:depguard // Wired in node
	"go.trai.ch/droidpack/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			archive.NodeID,
			javadoc.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
			logger.AdapterNodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			docTool, err := graft.Dep[ports.DocTool](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScheduler(archiver, docTool, store, hasher, tracer, log, clockwork.NewRealClock()), nil
		},
	})
}
