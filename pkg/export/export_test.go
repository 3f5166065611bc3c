package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/record"
	"github.com/ajxudir/podquery/pkg/snapshot"
	"github.com/ajxudir/podquery/pkg/testutil"
)

// TestExport tests writing both formats.
//
// It verifies that:
//   - Each file holds the records in its format
//   - The format follows the flag, not the file extension
func TestExport(t *testing.T) {
	dir := t.TempDir()
	records := testutil.FixtureRecords()[:2]
	yamlPath := filepath.Join(dir, "out.txt")
	jsonPath := filepath.Join(dir, "out.dat")

	require.NoError(t, Export(records, yamlPath, jsonPath))

	y, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(y), "- name: A\n"))

	j, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(j), "[\n"))

	for _, p := range []string{yamlPath, jsonPath} {
		got, err := snapshot.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	}
}

// TestExport_Empty tests that no matches still produce empty lists.
func TestExport_Empty(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "out.yaml")
	jsonPath := filepath.Join(dir, "out.json")

	require.NoError(t, Export([]record.Record{}, yamlPath, jsonPath))

	y, _ := os.ReadFile(yamlPath)
	assert.Equal(t, "[]\n", string(y))
	j, _ := os.ReadFile(jsonPath)
	assert.Equal(t, "[]\n", string(j))
}

// TestExport_Skip tests that empty paths write nothing.
func TestExport_Skip(t *testing.T) {
	assert.NoError(t, Export(testutil.FixtureRecords(), "", ""))
}

// TestExport_Compressed tests xz output.
func TestExport_Compressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json.xz")
	records := testutil.FixtureRecords()
	require.NoError(t, Export(records, "", path))

	got, err := snapshot.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

// TestExport_Errors tests ordering and classification of write failures.
//
// It verifies that:
//   - A JSON failure leaves the YAML file in place
//   - A YAML failure prevents the JSON write
func TestExport_Errors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing", "out")

	t.Run("json fails after yaml", func(t *testing.T) {
		yamlPath := filepath.Join(dir, "ok.yaml")
		err := Export(testutil.FixtureRecords(), yamlPath, missing)
		ioErr, ok := errors.IsIOError(err)
		require.True(t, ok)
		assert.Equal(t, "write json", ioErr.Op)
		assert.FileExists(t, yamlPath)
	})

	t.Run("yaml fails first", func(t *testing.T) {
		jsonPath := filepath.Join(dir, "never.json")
		err := Export(testutil.FixtureRecords(), missing, jsonPath)
		ioErr, ok := errors.IsIOError(err)
		require.True(t, ok)
		assert.Equal(t, "write yaml", ioErr.Op)
		assert.NoFileExists(t, jsonPath)
	})
}

// TestPrintNames tests the plain listing.
func TestPrintNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintNames(&buf, testutil.FixtureRecords()))
	assert.Equal(t, "A\nB\nC\nD\nE\nF\nG\nH\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintNames(&buf, nil))
	assert.Empty(t, buf.String())
}

// TestPrintTable tests the long listing.
func TestPrintTable(t *testing.T) {
	records := []record.Record{
		testutil.NewRecord("A").WithVersion("1.0.0").Local(false).Swift(true).WithSummary("Networking").Build(),
		testutil.NewRecord("Bare").Build(),
	}

	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME  VERSION  LOCAL  SWIFT  SUMMARY", lines[0])
	assert.Equal(t, "A     1.0.0    no     yes    Networking", lines[2])
	assert.Equal(t, "Bare  -        -      -      -", lines[3])
}
