// Package report renders audit outcomes as console summaries and as the
// fixed-schema tabular report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/soldera/lockaudit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.Reporter.
type Writer struct{}

// New creates a new report Writer.
func New() *Writer {
	return &Writer{}
}

// tsvColumns is the invariant report schema: every row has exactly these
// columns regardless of the advisory input format, with empty strings for
// fields the source expectation lacks.
var tsvColumns = []string{
	"Package Name",
	"Status",
	"Expected Versions",
	"Found Versions",
	"Locations",
	"Original Status",
	"Detection Date",
}

// WriteTSV renders one tab-separated row per result, header row first.
func (wr *Writer) WriteTSV(w io.Writer, run domain.Run) error {
	var b strings.Builder
	b.WriteString(strings.Join(tsvColumns, "\t"))
	b.WriteByte('\n')

	for _, res := range run.Results {
		expected := "Any"
		if len(res.Expectation.Versions) > 0 {
			expected = joinSpecs(res.Expectation.Versions)
		}

		found := "None"
		locations := "None"
		if len(res.Occurrences) > 0 {
			found = strings.Join(res.FoundVersions(), ", ")
			locations = joinContexts(res.Occurrences)
		}

		fields := []string{
			res.Expectation.Name.String(),
			string(res.Status),
			expected,
			found,
			locations,
			res.Expectation.AdvisoryStatus,
			res.Expectation.DetectionDate,
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(sanitizeField(f))
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

// sanitizeField keeps the one-record-per-line invariant by replacing tab and
// newline characters inside a field with a single space.
func sanitizeField(s string) string {
	return fieldSanitizer.Replace(s)
}

var fieldSanitizer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func joinSpecs(specs []domain.VersionSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinContexts(occs []domain.Occurrence) string {
	parts := make([]string, len(occs))
	for i, o := range occs {
		parts[i] = o.Context
	}
	return strings.Join(parts, "; ")
}

func formatOccurrence(o domain.Occurrence) string {
	return fmt.Sprintf("%s @ %s (%s)", o.Context, o.Version, o.Section)
}
