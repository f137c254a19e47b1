// Package domain holds the core value types and pure rules for auditing a
// pnpm lockfile against expected (typically compromised) package versions.
package domain

// Section identifies which top-level lockfile section an occurrence was
// extracted from.
type Section string

const (
	// SectionImporter is a direct dependency declaration of a workspace
	// importer (dependencies/devDependencies/optionalDependencies).
	SectionImporter Section = "importer"
	// SectionPackage is a global package definition keyed by name@version.
	SectionPackage Section = "package"
	// SectionSnapshot is a resolved dependency snapshot keyed by
	// name@version with an optional peer-dependency qualifier.
	SectionSnapshot Section = "snapshot"
)

// Occurrence records one place a package/version pair was observed in the
// lockfile. Occurrences are immutable once created and owned by the Index.
type Occurrence struct {
	// Name is the package name with any @scope/ prefix preserved.
	Name InternedString

	// Version is the concrete version string, stripped of peer qualifiers.
	Version string

	// Section is the lockfile section the occurrence came from.
	Section Section

	// Context identifies where within the section the occurrence sits,
	// e.g. ". (dependencies)" or "snapshots[react-dom@18.3.1(react@18.3.1)]".
	Context string

	// Specifier is the declared version range for importer entries.
	// Empty for package and snapshot occurrences.
	Specifier string
}

// Index is the queryable model of all package occurrences in a lockfile.
// It is populated once by the lockfile loader and read-only afterwards, so
// it may be shared across goroutines without locking.
type Index struct {
	// LockfileVersion is the lockfileVersion field of the source document.
	LockfileVersion string

	// Digest is a content hash of the raw lockfile text, used to identify
	// the audited document in diagnostics.
	Digest uint64

	byName map[InternedString][]Occurrence
	total  int
}

// NewIndex creates an empty occurrence index for a lockfile document.
func NewIndex(lockfileVersion string, digest uint64) *Index {
	return &Index{
		LockfileVersion: lockfileVersion,
		Digest:          digest,
		byName:          make(map[InternedString][]Occurrence),
	}
}

// Add appends an occurrence to the index, preserving discovery order per
// package name. Only the lockfile loader calls this, during construction.
func (ix *Index) Add(o Occurrence) {
	ix.byName[o.Name] = append(ix.byName[o.Name], o)
	ix.total++
}

// OccurrencesFor returns all occurrences of the exact package name in
// discovery order. It returns nil for an absent name and never fails.
func (ix *Index) OccurrencesFor(name string) []Occurrence {
	return ix.byName[NewInternedString(name)]
}

// Len reports the total number of occurrences across all packages.
func (ix *Index) Len() int {
	return ix.total
}
