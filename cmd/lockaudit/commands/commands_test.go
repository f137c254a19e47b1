package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soldera/lockaudit/cmd/lockaudit/commands"
	"github.com/soldera/lockaudit/internal/adapters/advisory"
	"github.com/soldera/lockaudit/internal/adapters/lockfile"
	"github.com/soldera/lockaudit/internal/adapters/logger"
	"github.com/soldera/lockaudit/internal/adapters/report"
	"github.com/soldera/lockaudit/internal/app"
	"github.com/soldera/lockaudit/internal/core/domain"
	"github.com/soldera/lockaudit/internal/engine/audit"
)

const sampleLock = `lockfileVersion: '9.0'

importers:
  .:
    dependencies:
      react:
        specifier: ^18.2.0
        version: 18.3.1

packages:
  react@18.3.1:
    resolution: {integrity: sha512-abc}

snapshots:
  react@18.3.1: {}
`

func newCLI(out *bytes.Buffer) *commands.CLI {
	a := app.New(lockfile.New(), advisory.New(), audit.New(), report.New(), logger.New())
	cli := commands.New(a)
	cli.SetOutput(out)
	return cli
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRoot_AdHocFound(t *testing.T) {
	lockPath := writeFile(t, t.TempDir(), "pnpm-lock.yaml", sampleLock)

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"react", "18.3.1", "-f", lockPath})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "found react @ 18.3.1")
}

func TestRoot_AdHocNotFound(t *testing.T) {
	lockPath := writeFile(t, t.TempDir(), "pnpm-lock.yaml", sampleLock)

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"left-pad", "-f", lockPath})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrCheckFailed)
	assert.Contains(t, out.String(), "package not found: left-pad")
}

func TestRoot_AdHocVersionMismatch(t *testing.T) {
	lockPath := writeFile(t, t.TempDir(), "pnpm-lock.yaml", sampleLock)

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"react", "17.0.2", "-f", lockPath})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrCheckFailed)
	assert.Contains(t, out.String(), "expected version: 17.0.2")
}

func TestRoot_Batch(t *testing.T) {
	dir := t.TempDir()
	lockPath := writeFile(t, dir, "pnpm-lock.yaml", sampleLock)
	batchPath := writeFile(t, dir, "advisories.tsv",
		"Row\tPackage Name\tVersion(s)\n1\treact\t18.3.1\n2\tleft-pad\t1.3.0\n")

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"-f", lockPath, "-b", batchPath})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Summary:")
	assert.Contains(t, out.String(), "total:            2")
	assert.Contains(t, out.String(), "not found:        1")
}

func TestRoot_BatchWithReportFile(t *testing.T) {
	dir := t.TempDir()
	lockPath := writeFile(t, dir, "pnpm-lock.yaml", sampleLock)
	batchPath := writeFile(t, dir, "advisories.tsv",
		"Row\tPackage Name\tVersion(s)\n1\treact\t18.3.1\n")
	reportPath := filepath.Join(dir, "report.tsv")

	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"-f", lockPath, "-b", batchPath, "-o", reportPath})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Report written to "+reportPath)

	raw, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"Package Name\tStatus\tExpected Versions\tFound Versions\tLocations\tOriginal Status\tDetection Date",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "react\tFound\t18.3.1\t"), "row: %s", lines[1])
}

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRoot_MissingLockfile(t *testing.T) {
	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"react", "-f", filepath.Join(t.TempDir(), "nope.yaml")})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read lockfile")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cli := newCLI(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "dev")
}
