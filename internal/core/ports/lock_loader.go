package ports

import "github.com/soldera/lockaudit/internal/core/domain"

// LockLoader parses raw lockfile text into a queryable occurrence index.
//
//go:generate mockgen -source=lock_loader.go -destination=mocks/mock_lock_loader.go -package=mocks
type LockLoader interface {
	// Load builds the occurrence index from lockfile text. It fails when the
	// text is not well-formed YAML or contains none of the recognized
	// top-level sections.
	Load(text string) (*domain.Index, error)
}
