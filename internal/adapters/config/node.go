package config

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MarcelBraghetto/forge/internal/core/ports"
)

// NodeID is the graft identifier for the configuration loader adapter.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})
}
