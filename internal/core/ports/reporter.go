package ports

import (
	"io"

	"github.com/soldera/lockaudit/internal/core/domain"
)

// Reporter renders audit outcomes. Implementations write to the supplied
// writer and never touch the process streams directly.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// WriteResult renders a single ad-hoc check result as console text.
	WriteResult(w io.Writer, res domain.Result, verbose bool) error

	// WriteRun renders a batch run summary with aggregate counters.
	WriteRun(w io.Writer, run domain.Run, verbose bool) error

	// WriteTSV renders the fixed 7-column tabular report, header row first.
	WriteTSV(w io.Writer, run domain.Run) error
}
