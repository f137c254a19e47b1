package domain

// Status classifies the outcome of auditing one expectation against the
// occurrence index. The four cases are mutually exclusive.
type Status string

const (
	// StatusFound means the package is present and every expected version
	// spec was satisfied by at least one occurrence. With no specs supplied,
	// presence alone yields Found.
	StatusFound Status = "Found"
	// StatusPartialMatch means the package is present and some, but not all,
	// expected specs were satisfied.
	StatusPartialMatch Status = "Partial Match"
	// StatusVersionMismatch means the package is present but none of its
	// occurrences satisfy any expected spec. Only possible when at least one
	// spec was supplied.
	StatusVersionMismatch Status = "Version Mismatch"
	// StatusNotFound means no occurrence of the package name exists in any
	// lockfile section.
	StatusNotFound Status = "Not Found"
)

// Result is the audit outcome for a single expectation.
type Result struct {
	Expectation Expectation

	Status Status

	// Matches holds the occurrences that satisfied at least one expected
	// spec. Populated for Found and PartialMatch.
	Matches []Occurrence

	// Occurrences holds every occurrence of the package name, regardless of
	// version, for display and mismatch evidence.
	Occurrences []Occurrence
}

// FoundVersions returns the distinct versions observed for the package, in
// first-seen order.
func (r Result) FoundVersions() []string {
	seen := make(map[string]struct{}, len(r.Occurrences))
	var versions []string
	for _, o := range r.Occurrences {
		if _, ok := seen[o.Version]; ok {
			continue
		}
		seen[o.Version] = struct{}{}
		versions = append(versions, o.Version)
	}
	return versions
}

// Counters aggregates result statuses over a run. The per-status fields
// always sum to Total.
type Counters struct {
	Total    int
	Found    int
	Partial  int
	Mismatch int
	NotFound int
}

// Tally records one result status.
func (c *Counters) Tally(s Status) {
	c.Total++
	switch s {
	case StatusFound:
		c.Found++
	case StatusPartialMatch:
		c.Partial++
	case StatusVersionMismatch:
		c.Mismatch++
	case StatusNotFound:
		c.NotFound++
	}
}

// Run is the outcome of a batch audit: one result per expectation, in the
// exact order the expectations were supplied, plus aggregate counters.
// A Run is built once per invocation and discarded after rendering.
type Run struct {
	Results  []Result
	Counters Counters
}

// NewRun assembles a run from ordered results and tallies the counters.
func NewRun(results []Result) Run {
	run := Run{Results: results}
	for _, res := range results {
		run.Counters.Tally(res.Status)
	}
	return run
}
