package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	telemetryprogrock "github.com/MarcelBraghetto/forge/internal/adapters/telemetry/progrock"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
)

// NodeID is the graft identifier for the telemetry adapter.
const NodeID graft.ID = "adapter.telemetry"

// ProgressEnv switches step recording from the no-op recorder to the
// progrock tape. Raw tool output stays the primary surface either way.
const ProgressEnv = "FORGE_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			if os.Getenv(ProgressEnv) != "" {
				return telemetryprogrock.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
