package pipeline

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/MarcelBraghetto/forge/internal/adapters/fetch"
	"github.com/MarcelBraghetto/forge/internal/adapters/fs"
	"github.com/MarcelBraghetto/forge/internal/adapters/logger"
	"github.com/MarcelBraghetto/forge/internal/adapters/manifest"
	"github.com/MarcelBraghetto/forge/internal/adapters/shell"
	"github.com/MarcelBraghetto/forge/internal/adapters/telemetry"
	"github.com/MarcelBraghetto/forge/internal/core/ports"
	"github.com/MarcelBraghetto/forge/internal/engine/collect"
)

// NodeID is the graft identifier for the pipeline dependency bundle.
const NodeID graft.ID = "engine.pipelines"

func init() {
	graft.Register(graft.Node[*Deps]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			fetch.NodeID,
			telemetry.NodeID,
			fs.NodeID,
			collect.NodeID,
			manifest.NodeID,
		},
		Run: func(ctx context.Context) (*Deps, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			ops, err := graft.Dep[*fs.Ops](ctx)
			if err != nil {
				return nil, err
			}
			collector, err := graft.Dep[*collect.Collector](ctx)
			if err != nil {
				return nil, err
			}
			rewriter, err := graft.Dep[*manifest.Rewriter](ctx)
			if err != nil {
				return nil, err
			}

			return &Deps{
				Logger:    log,
				Runner:    runner,
				Fetcher:   fetcher,
				Telemetry: recorder,
				Ops:       ops,
				Collector: collector,
				Rewriter:  rewriter,
			}, nil
		},
	})
}
