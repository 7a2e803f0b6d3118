package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MarcelBraghetto/forge/internal/adapters/config"
	"github.com/MarcelBraghetto/forge/internal/adapters/logger"
	"github.com/MarcelBraghetto/forge/internal/adapters/telemetry"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
	"github.com/MarcelBraghetto/forge/internal/engine/pipeline"
)

const (
	// AppNodeID is the graft identifier for the main App node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the graft identifier for the components node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pipeline.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			pipelines, err := graft.Dep[*pipeline.Deps](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, pipelines, log, recorder), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application}, nil
		},
	})
}
