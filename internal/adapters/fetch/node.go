package fetch

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MarcelBraghetto/forge/internal/adapters/logger"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
)

// NodeID is the graft identifier for the archive fetcher adapter.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(log), nil
		},
	})
}
