package advisory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/soldera/lockaudit/internal/adapters/advisory"
	"github.com/soldera/lockaudit/internal/core/domain"
)

func TestParser_Parse_StandardList(t *testing.T) {
	text := "Row\tPackage Name\tVersion(s)\n" +
		"1\tlodash\t4.17.21, 4.17.20\n" +
		"2\t@ant-design/icons\t4.8.3\n" +
		"3\tchalk\t\n" +
		"\n" +
		"4\t\"quoted-pkg\"\t1.0.0*\n"

	list, err := advisory.New().Parse(text)
	require.NoError(t, err)
	require.Len(t, list.Expectations, 4)
	assert.Zero(t, list.Skipped)

	exp := list.Expectations[0]
	assert.Equal(t, "lodash", exp.Name.String())
	assert.Equal(t, []domain.VersionSpec{"4.17.21", "4.17.20"}, exp.Versions)
	assert.Empty(t, exp.AdvisoryStatus)
	assert.Empty(t, exp.DetectionDate)

	assert.Equal(t, "@ant-design/icons", list.Expectations[1].Name.String())

	// Empty version cell means any version.
	assert.Empty(t, list.Expectations[2].Versions)

	// Quotes and trailing annotation glyphs are stripped.
	assert.Equal(t, "quoted-pkg", list.Expectations[3].Name.String())
	assert.Equal(t, []domain.VersionSpec{"1.0.0"}, list.Expectations[3].Versions)
}

func TestParser_Parse_SecurityReport(t *testing.T) {
	text := "Package Name\tCompromised Version(s)\tDetection Date\tStatus\n" +
		"debug\t4.4.2\t2025-09-08\tRemoved from registry\n" +
		"@ctrl/tinycolor\t4.1.1, 4.1.2\t2025-09-15\tActive\n"

	list, err := advisory.New().Parse(text)
	require.NoError(t, err)
	require.Len(t, list.Expectations, 2)

	exp := list.Expectations[0]
	assert.Equal(t, "debug", exp.Name.String())
	assert.Equal(t, []domain.VersionSpec{"4.4.2"}, exp.Versions)
	assert.Equal(t, "2025-09-08", exp.DetectionDate)
	assert.Equal(t, "Removed from registry", exp.AdvisoryStatus)

	assert.Equal(t, []domain.VersionSpec{"4.1.1", "4.1.2"}, list.Expectations[1].Versions)
}

func TestParser_Parse_PreservesInputOrder(t *testing.T) {
	text := "Row\tPackage Name\tVersion(s)\n" +
		"1\tpkgB\t1.0.0\n" +
		"2\tpkgA\t1.0.0\n"

	list, err := advisory.New().Parse(text)
	require.NoError(t, err)
	require.Len(t, list.Expectations, 2)
	assert.Equal(t, "pkgB", list.Expectations[0].Name.String())
	assert.Equal(t, "pkgA", list.Expectations[1].Name.String())
}

func TestParser_Parse_SkipsMalformedRows(t *testing.T) {
	text := "Row\tPackage Name\tVersion(s)\n" +
		"1\tlodash\t4.17.21\n" +
		"not a tabular row\n" +
		"2\t\t1.0.0\n" +
		"3\tchalk\t5.3.0\n"

	list, err := advisory.New().Parse(text)
	require.NoError(t, err)
	assert.Len(t, list.Expectations, 2)
	assert.Equal(t, 2, list.Skipped)
}

func TestParser_Parse_UnknownHeader(t *testing.T) {
	_, err := advisory.New().Parse("Name,Version\nlodash,4.17.21\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownBatchFormat)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "Name,Version", zErr.Metadata()["header"])
}

func TestParser_Parse_BlankInput(t *testing.T) {
	list, err := advisory.New().Parse("\n  \n")
	require.NoError(t, err)
	assert.Empty(t, list.Expectations)
	assert.Zero(t, list.Skipped)
}

func TestParser_Parse_LeadingBlankLinesBeforeHeader(t *testing.T) {
	text := "\nPackage Name\tCompromised Version(s)\tDetection Date\tStatus\nleft-pad\t1.3.0\t\t\n"
	list, err := advisory.New().Parse(text)
	require.NoError(t, err)
	require.Len(t, list.Expectations, 1)
	assert.Equal(t, "left-pad", list.Expectations[0].Name.String())
}
