package lockfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/soldera/lockaudit/internal/adapters/lockfile"
	"github.com/soldera/lockaudit/internal/core/domain"
)

const sampleLock = `lockfileVersion: '9.0'

settings:
  autoInstallPeers: true

importers:
  .:
    dependencies:
      react:
        specifier: ^18.2.0
        version: 18.3.1
      '@ant-design/icons':
        specifier: ^4.8.0
        version: 4.8.3(react-dom@18.3.1(react@18.3.1))(react@18.3.1)
    devDependencies:
      typescript:
        specifier: ^5.4.0
        version: 5.6.3
  packages/app:
    dependencies:
      lodash:
        specifier: ^4.17.0
        version: 4.17.21

packages:
  react@18.3.1:
    resolution: {integrity: sha512-wS+hAgJShR0KhEvPJArfuPVN1+Hz1t0Y6n5jLrGQbkb4urgPE/0Rve+1kMB1v/oWgHgm4WIcV+i7F2pTVj+2iQ==}
  '@ant-design/icons@4.8.3':
    resolution: {integrity: sha512-HGlIQZzrEbAhpJR6+IGdzfbPym94Owr6JZkJ2QCCnOkPVIWMO2xgIVcOKnl8YcpijIo39V7l2qQL5fmtw56cMw==}
  lodash@4.17.21:
    resolution: {integrity: sha512-v2kDEe57lecTulaDIuNTPy3Ry4gLGJ6Z1O3vE1krgXZNrsQ+LFTGHVxVjcXPs17LhbZVGedAJv8XZ1tvj5FvSg==}
  typescript@5.6.3:
    resolution: {integrity: sha512-hjcS1mhfuyi4WW8IWtjP7brDrG2cuDZukyrYrSauoXGNgx0S7zceP07adYkJycEr56BOUTNPzbInooiN3fn1qw==}

snapshots:
  react@18.3.1:
    dependencies:
      loose-envify: 1.4.0
  '@ant-design/icons@4.8.3(react-dom@18.3.1(react@18.3.1))(react@18.3.1)':
    dependencies:
      react: 18.3.1
  lodash@4.17.21: {}
  typescript@5.6.3: {}
`

func TestLoader_Load(t *testing.T) {
	ix, err := lockfile.New().Load(sampleLock)
	require.NoError(t, err)
	require.NotNil(t, ix)

	assert.Equal(t, "9.0", ix.LockfileVersion)
	assert.NotZero(t, ix.Digest)

	// react: importer + package definition + snapshot.
	occs := ix.OccurrencesFor("react")
	require.Len(t, occs, 3)
	assert.Equal(t, domain.SectionImporter, occs[0].Section)
	assert.Equal(t, ". (dependencies)", occs[0].Context)
	assert.Equal(t, "^18.2.0", occs[0].Specifier)
	assert.Equal(t, domain.SectionPackage, occs[1].Section)
	assert.Equal(t, domain.SectionSnapshot, occs[2].Section)
	for _, o := range occs {
		assert.Equal(t, "18.3.1", o.Version)
	}

	// Scoped package: peer qualifiers stripped from versions, raw snapshot
	// key preserved in the context.
	occs = ix.OccurrencesFor("@ant-design/icons")
	require.Len(t, occs, 3)
	for _, o := range occs {
		assert.Equal(t, "4.8.3", o.Version)
	}
	assert.Equal(t, "snapshots[@ant-design/icons@4.8.3(react-dom@18.3.1(react@18.3.1))(react@18.3.1)]", occs[2].Context)

	// Dev dependency of the root importer.
	occs = ix.OccurrencesFor("typescript")
	require.Len(t, occs, 3)
	assert.Equal(t, ". (devDependencies)", occs[0].Context)

	// Second importer.
	occs = ix.OccurrencesFor("lodash")
	require.Len(t, occs, 3)
	assert.Equal(t, "packages/app (dependencies)", occs[0].Context)

	// Nested snapshot dependency entries are not walked: loose-envify only
	// appears under a snapshot value, never as a key.
	assert.Nil(t, ix.OccurrencesFor("loose-envify"))
}

func TestLoader_Load_SectionSubset(t *testing.T) {
	ix, err := lockfile.New().Load("lockfileVersion: '9.0'\npackages:\n  react@18.3.1:\n    resolution: {integrity: sha512-x}\n")
	require.NoError(t, err)
	require.Len(t, ix.OccurrencesFor("react"), 1)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := lockfile.New().Load("importers:\n  .:\n -[broken")
		require.Error(t, err)
	})

	t.Run("no recognizable sections", func(t *testing.T) {
		_, err := lockfile.New().Load("lockfileVersion: '9.0'\nsettings:\n  autoInstallPeers: true\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLockfileUnrecognized)

		zErr, ok := err.(*zerr.Error)
		require.True(t, ok, "expected *zerr.Error, got %T", err)
		assert.Equal(t, "9.0", zErr.Metadata()["lockfile_version"])
	})
}
