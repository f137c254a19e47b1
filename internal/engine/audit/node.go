package audit

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "engine.audit"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Engine, error) {
			return New(), nil
		},
	})
}
