package report

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/soldera/lockaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Reporter, error) {
			return New(), nil
		},
	})
}
