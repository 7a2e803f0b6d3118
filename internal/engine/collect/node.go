package collect

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MarcelBraghetto/forge/internal/adapters/fs"
)

// NodeID is the graft identifier for the output collector.
const NodeID graft.ID = "engine.collector"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			ops, err := graft.Dep[*fs.Ops](ctx)
			if err != nil {
				return nil, err
			}
			return NewCollector(ops), nil
		},
	})
}
