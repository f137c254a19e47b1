// Package app implements the application layer for lockaudit.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/zerr"

	"github.com/soldera/lockaudit/internal/core/domain"
	"github.com/soldera/lockaudit/internal/core/ports"
	"github.com/soldera/lockaudit/internal/engine/audit"
)

// App represents the main application logic.
type App struct {
	lock     ports.LockLoader
	advisory ports.AdvisoryParser
	engine   *audit.Engine
	reporter ports.Reporter
	logger   ports.Logger
}

// New creates a new App instance.
func New(lock ports.LockLoader, advisory ports.AdvisoryParser, eng *audit.Engine,
	rep ports.Reporter, log ports.Logger,
) *App {
	return &App{
		lock:     lock,
		advisory: advisory,
		engine:   eng,
		reporter: rep,
		logger:   log,
	}
}

// Options carries per-invocation flags shared by both audit modes.
type Options struct {
	// Verbose adds occurrence specifiers and per-row detail to console
	// output, plus lockfile diagnostics on the log stream.
	Verbose bool
}

// Check runs a single ad-hoc query against the lockfile: is the named
// package present, optionally at the given version. The result is rendered
// to out; a status other than Found returns domain.ErrCheckFailed so the
// caller can map it to a non-zero exit.
func (a *App) Check(ctx context.Context, lockText, pkg, version string, out io.Writer, opts Options) error {
	ix, err := a.lock.Load(lockText)
	if err != nil {
		return zerr.Wrap(err, "failed to load lockfile")
	}
	a.logIndex(ix, opts)

	res := a.engine.Query(ix, pkg, version)
	if err := a.reporter.WriteResult(out, res, opts.Verbose); err != nil {
		return err
	}

	if res.Status != domain.StatusFound {
		// Wrapping keeps the sentinel in the cause chain for errors.Is.
		failed := zerr.With(zerr.Wrap(domain.ErrCheckFailed, "package check did not pass"),
			"package", pkg)
		return zerr.With(failed, "status", string(res.Status))
	}
	return nil
}

// Batch audits every expectation in the advisory text against the lockfile.
// The console summary goes to console; when report is non-nil the tabular
// report is written there as well. Unlike Check, a batch run always
// succeeds once its inputs parse: per-package outcomes are data, not errors.
func (a *App) Batch(ctx context.Context, lockText, batchText string, console, report io.Writer, opts Options) error {
	ix, err := a.lock.Load(lockText)
	if err != nil {
		return zerr.Wrap(err, "failed to load lockfile")
	}
	a.logIndex(ix, opts)

	list, err := a.advisory.Parse(batchText)
	if err != nil {
		return zerr.Wrap(err, "failed to parse batch file")
	}
	if list.Skipped > 0 {
		a.logger.Warn(fmt.Sprintf("skipped %d malformed batch rows", list.Skipped))
	}

	run := a.engine.Run(ctx, ix, list.Expectations)

	if err := a.reporter.WriteRun(console, run, opts.Verbose); err != nil {
		return err
	}
	if report != nil {
		if err := a.reporter.WriteTSV(report, run); err != nil {
			return zerr.Wrap(err, "failed to write report")
		}
	}
	return nil
}

func (a *App) logIndex(ix *domain.Index, opts Options) {
	if !opts.Verbose {
		return
	}
	a.logger.Info(fmt.Sprintf("parsed lockfile version %s (%d occurrences, digest %x)",
		ix.LockfileVersion, ix.Len(), ix.Digest))
}
