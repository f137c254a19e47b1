// Package advisory parses batch advisory files listing known-compromised
// packages. Two externally-authored tabular layouts are recognized, selected
// by sniffing the header line; both feed the same expectation record.
package advisory

import (
	"strings"
	"unicode"

	"github.com/soldera/lockaudit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.AdvisoryParser.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse detects the advisory layout from the first non-empty line and parses
// the remaining rows in order. Malformed rows are skipped and counted, never
// aborting the batch; an unrecognized header fails the whole batch before
// any row is processed. All-blank input yields an empty list.
func (p *Parser) Parse(text string) (domain.AdvisoryList, error) {
	lines := strings.Split(text, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return domain.AdvisoryList{}, nil
	}

	header := lines[start]
	rows := lines[start+1:]
	switch {
	case strings.Contains(header, "Row") && strings.Contains(header, "Package Name"):
		return parseStandardList(rows), nil
	case strings.Contains(header, "Compromised Version(s)"):
		return parseSecurityReport(rows), nil
	default:
		// Wrapping keeps the sentinel in the cause chain for errors.Is.
		return domain.AdvisoryList{}, zerr.With(zerr.Wrap(domain.ErrUnknownBatchFormat, "failed to detect batch layout"),
			"header", header)
	}
}

// parseStandardList handles the plain list layout:
// row index (ignored) \t package name \t comma-separated versions.
func parseStandardList(rows []string) domain.AdvisoryList {
	var list domain.AdvisoryList
	for _, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		parts := strings.Split(row, "\t")
		if len(parts) < 3 {
			list.Skipped++
			continue
		}
		name := cleanName(parts[1])
		if name == "" {
			list.Skipped++
			continue
		}
		list.Expectations = append(list.Expectations, domain.Expectation{
			Name:     domain.NewInternedString(name),
			Versions: parseVersions(parts[2]),
		})
	}
	return list
}

// parseSecurityReport handles the security-report layout:
// package name \t compromised versions \t detection date \t status.
// Date and status columns are carried through when present.
func parseSecurityReport(rows []string) domain.AdvisoryList {
	var list domain.AdvisoryList
	for _, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		parts := strings.Split(row, "\t")
		if len(parts) < 2 {
			list.Skipped++
			continue
		}
		name := cleanName(parts[0])
		if name == "" {
			list.Skipped++
			continue
		}
		exp := domain.Expectation{
			Name:     domain.NewInternedString(name),
			Versions: parseVersions(parts[1]),
		}
		if len(parts) > 2 {
			exp.DetectionDate = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			exp.AdvisoryStatus = strings.TrimSpace(parts[3])
		}
		list.Expectations = append(list.Expectations, exp)
	}
	return list
}

// parseVersions splits a comma-separated version cell into specs. An empty
// cell means any version and yields an empty spec list.
func parseVersions(cell string) []domain.VersionSpec {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	var specs []domain.VersionSpec
	for _, tok := range strings.Split(cell, ",") {
		tok = cleanVersionToken(tok)
		if tok == "" {
			continue
		}
		specs = append(specs, domain.VersionSpec(tok))
	}
	return specs
}

// cleanVersionToken trims whitespace and the annotation glyphs advisory
// authors append to version numbers (asterisks, daggers and the like).
func cleanVersionToken(tok string) string {
	tok = strings.TrimSpace(tok)
	return strings.TrimRightFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+'
	})
}

// cleanName trims whitespace and surrounding quotes, preserving any @scope/
// prefix verbatim.
func cleanName(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"'`)
}
