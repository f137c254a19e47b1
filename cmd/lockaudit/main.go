// Package main is the entry point for the lockaudit CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/soldera/lockaudit/cmd/lockaudit/commands"
	"github.com/soldera/lockaudit/internal/app"
	"github.com/soldera/lockaudit/internal/core/domain"
	_ "github.com/soldera/lockaudit/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if graph resolution failed; write directly.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCheckFailed) {
			// The miss has already been rendered; the exit code is the signal.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
