// Package lockfile parses pnpm-lock.yaml text into the occurrence index.
package lockfile

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/soldera/lockaudit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.LockLoader for the pnpm-lock.yaml format.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// Load parses lockfile text and extracts one occurrence per package/version
// observation across the importers, packages and snapshots sections.
func (l *Loader) Load(text string) (*domain.Index, error) {
	var doc lockDocument
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lockfile")
	}

	// A missing section is tolerated as empty, but a document with none of
	// the three sections is not a lockfile we understand.
	if doc.Importers == nil && doc.Packages == nil && doc.Snapshots == nil {
		// Wrapping keeps the sentinel in the cause chain for errors.Is.
		return nil, zerr.With(zerr.Wrap(domain.ErrLockfileUnrecognized, "failed to index lockfile"),
			"lockfile_version", string(doc.LockfileVersion))
	}

	ix := domain.NewIndex(string(doc.LockfileVersion), xxhash.Sum64String(text))

	// Map iteration order is not stable, so keys are sorted to keep
	// occurrence order and rendered reports deterministic.
	for _, importer := range sortedKeys(doc.Importers) {
		entry := doc.Importers[importer]
		addImporterDeps(ix, importer, "dependencies", entry.Dependencies)
		addImporterDeps(ix, importer, "devDependencies", entry.DevDependencies)
		addImporterDeps(ix, importer, "optionalDependencies", entry.OptionalDependencies)
	}

	for _, key := range sortedKeys(doc.Packages) {
		name, version := SplitKey(key)
		if name == "" || version == "" {
			continue
		}
		ix.Add(domain.Occurrence{
			Name:    domain.NewInternedString(name),
			Version: version,
			Section: domain.SectionPackage,
			Context: "packages",
		})
	}

	for _, key := range sortedKeys(doc.Snapshots) {
		name, version := SplitKey(key)
		if name == "" || version == "" {
			continue
		}
		ix.Add(domain.Occurrence{
			Name:    domain.NewInternedString(name),
			Version: version,
			Section: domain.SectionSnapshot,
			Context: fmt.Sprintf("snapshots[%s]", key),
		})
	}

	return ix, nil
}

func addImporterDeps(ix *domain.Index, importer, kind string, deps map[string]dependencyRef) {
	for _, name := range sortedKeys(deps) {
		ref := deps[name]
		ix.Add(domain.Occurrence{
			Name:      domain.NewInternedString(name),
			Version:   StripPeerSuffix(ref.Version),
			Section:   domain.SectionImporter,
			Context:   fmt.Sprintf("%s (%s)", importer, kind),
			Specifier: ref.Specifier,
		})
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
