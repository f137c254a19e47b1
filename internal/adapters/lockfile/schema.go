package lockfile

import "gopkg.in/yaml.v3"

// DTO structures mirroring the pnpm-lock.yaml document. Only the fields the
// occurrence extraction needs are declared; yaml.v3 ignores the rest.

type lockDocument struct {
	LockfileVersion versionField             `yaml:"lockfileVersion"`
	Importers       map[string]importerEntry `yaml:"importers"`
	Packages        map[string]packageEntry  `yaml:"packages"`
	Snapshots       map[string]snapshotEntry `yaml:"snapshots"`
}

// versionField tolerates both spellings of the version scalar: v9 emits a
// quoted string ('9.0'), v5/v6 an unquoted float (5.4).
type versionField string

func (v *versionField) UnmarshalYAML(node *yaml.Node) error {
	*v = versionField(node.Value)
	return nil
}

type importerEntry struct {
	Dependencies         map[string]dependencyRef `yaml:"dependencies"`
	DevDependencies      map[string]dependencyRef `yaml:"devDependencies"`
	OptionalDependencies map[string]dependencyRef `yaml:"optionalDependencies"`
}

type dependencyRef struct {
	Specifier string `yaml:"specifier"`
	Version   string `yaml:"version"`
}

type packageEntry struct {
	Resolution resolutionRef `yaml:"resolution"`
}

type resolutionRef struct {
	Integrity string `yaml:"integrity"`
}

// snapshotEntry values list transitive dependencies, but those duplicate
// information already present as top-level snapshot keys, so the extraction
// only reads the keys.
type snapshotEntry struct {
	Dependencies map[string]string `yaml:"dependencies"`
}
