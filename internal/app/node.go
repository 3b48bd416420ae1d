package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/droidpack/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/droidpack/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/droidpack/internal/core/ports"
	"go.trai.ch/droidpack/internal/engine/scheduler"
	"go.trai.ch/droidpack/internal/plugin/androidarchive"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			logger.AdapterNodeID,
			scheduler.NodeID,
			androidarchive.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			host, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			archivePlugin, err := graft.Dep[*androidarchive.Plugin](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, host, log, sched, clockwork.NewRealClock(), archivePlugin), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			host, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: host}, nil
		},
	})
}
