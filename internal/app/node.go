package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/soldera/lockaudit/internal/adapters/advisory" //nolint:depguard // Wired in app layer
	"github.com/soldera/lockaudit/internal/adapters/lockfile" //nolint:depguard // Wired in app layer
	"github.com/soldera/lockaudit/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/soldera/lockaudit/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"github.com/soldera/lockaudit/internal/core/ports"
	"github.com/soldera/lockaudit/internal/engine/audit"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			advisory.NodeID,
			audit.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			lock, err := graft.Dep[ports.LockLoader](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.AdvisoryParser](ctx)
			if err != nil {
				return nil, err
			}

			eng, err := graft.Dep[*audit.Engine](ctx)
			if err != nil {
				return nil, err
			}

			rep, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(lock, parser, eng, rep, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}

// Components bundles the resolved application graph for the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
