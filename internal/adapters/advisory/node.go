package advisory

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/soldera/lockaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.advisory_parser"

func init() {
	graft.Register(graft.Node[ports.AdvisoryParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.AdvisoryParser, error) {
			return New(), nil
		},
	})
}
