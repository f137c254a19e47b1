package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/soldera/lockaudit/internal/core/ports"
)

const NodeID graft.ID = "adapter.lock_loader"

func init() {
	graft.Register(graft.Node[ports.LockLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockLoader, error) {
			return New(), nil
		},
	})
}
