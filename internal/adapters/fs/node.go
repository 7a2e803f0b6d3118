package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the graft identifier for the filesystem utility adapter.
const NodeID graft.ID = "adapter.fs"

func init() {
	graft.Register(graft.Node[*Ops]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Ops, error) {
			return NewOps(), nil
		},
	})
}
