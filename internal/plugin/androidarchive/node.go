package androidarchive

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the android archive plugin Graft node.
const NodeID graft.ID = "plugin.androidarchive"

func init() {
	graft.Register(graft.Node[*Plugin]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Plugin, error) {
			return New(), nil
		},
	})
}
