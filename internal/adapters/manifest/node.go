package manifest

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the graft identifier for the manifest rewriter adapter.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[*Rewriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Rewriter, error) {
			return NewRewriter(), nil
		},
	})
}
