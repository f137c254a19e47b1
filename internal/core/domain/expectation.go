package domain

import "strings"

// VersionSpec is a version expectation. A spec with as many dot-separated
// segments as a candidate version requires an exact match; a shorter spec
// matches any version sharing its leading segments.
type VersionSpec string

// Matches reports whether the found version satisfies the spec.
// Comparison is segment-by-segment string equality over the spec's segments;
// a spec with more segments than the found version never matches.
func (s VersionSpec) Matches(found string) bool {
	want := strings.Split(string(s), ".")
	have := strings.Split(found, ".")
	if len(want) > len(have) {
		return false
	}
	for i, seg := range want {
		if have[i] != seg {
			return false
		}
	}
	return true
}

// Classification is the outcome of matching a list of version specs against
// the set of versions actually found for a package.
type Classification int

const (
	// AllSatisfied means every spec was matched by at least one found version.
	AllSatisfied Classification = iota
	// SomeSatisfied means at least one spec matched and at least one did not.
	SomeSatisfied
	// NoneSatisfied means no spec matched any found version.
	NoneSatisfied
)

// Classify matches each spec against the found versions. It must not be
// called with an empty spec list; presence alone decides that case.
func Classify(specs []VersionSpec, found []string) Classification {
	satisfied := 0
	for _, spec := range specs {
		for _, v := range found {
			if spec.Matches(v) {
				satisfied++
				break
			}
		}
	}
	switch satisfied {
	case len(specs):
		return AllSatisfied
	case 0:
		return NoneSatisfied
	default:
		return SomeSatisfied
	}
}

// Expectation is one row of audit intent: a package that should (or should
// not) appear in the lockfile, optionally pinned to specific versions.
// AdvisoryStatus and DetectionDate are carried through from security-report
// input and empty for standard-list and ad-hoc input.
type Expectation struct {
	Name           InternedString
	Versions       []VersionSpec
	AdvisoryStatus string
	DetectionDate  string
}

// AdvisoryList is the outcome of parsing a batch advisory file: the
// expectations in input order plus the number of malformed rows that were
// skipped. Skipping malformed rows (rather than aborting the batch) is the
// documented contract of the advisory parser.
type AdvisoryList struct {
	Expectations []Expectation
	Skipped      int
}
