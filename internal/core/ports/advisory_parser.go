package ports

import "github.com/soldera/lockaudit/internal/core/domain"

// AdvisoryParser parses batch advisory text into ordered expectations.
//
//go:generate mockgen -source=advisory_parser.go -destination=mocks/mock_advisory_parser.go -package=mocks
type AdvisoryParser interface {
	// Parse detects the advisory layout from the header line and parses the
	// rows. Malformed rows are skipped and counted on the returned list; an
	// unrecognized header fails the whole batch.
	Parse(text string) (domain.AdvisoryList, error)
}
