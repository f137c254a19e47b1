// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/soldera/lockaudit/internal/adapters/advisory"
	_ "github.com/soldera/lockaudit/internal/adapters/lockfile"
	_ "github.com/soldera/lockaudit/internal/adapters/logger"
	_ "github.com/soldera/lockaudit/internal/adapters/report"
	// Register app and engine nodes.
	_ "github.com/soldera/lockaudit/internal/app"
	_ "github.com/soldera/lockaudit/internal/engine/audit"
)
