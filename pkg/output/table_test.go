package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTable tests the behavior of NewTable.
//
// It verifies:
//   - Creates table with zero columns and rows
func TestNewTable(t *testing.T) {
	table := NewTable()
	require.NotNil(t, table)
	assert.Empty(t, table.columns)
	assert.Empty(t, table.rows)
	assert.Equal(t, "", table.HeaderRow())
}

// TestTableAddColumn tests the behavior of AddColumn.
//
// It verifies:
//   - Adds column with header width
//   - Chain returns same table instance
func TestTableAddColumn(t *testing.T) {
	t.Run("adds multiple columns", func(t *testing.T) {
		table := NewTable().
			AddColumn("NAME").
			AddColumn("VERSION").
			AddColumn("LOCAL")
		assert.Equal(t, "NAME  VERSION  LOCAL", table.HeaderRow())
		assert.Equal(t, "----  -------  -----", table.SeparatorRow())
	})

	t.Run("chain returns same table", func(t *testing.T) {
		table := NewTable()
		assert.Same(t, table, table.AddColumn("TEST"))
	})
}

// TestTableAddRow tests width tracking and truncation.
//
// It verifies:
//   - Columns widen to the widest value
//   - MaxWidth truncates long cells
//   - Missing values are empty
func TestTableAddRow(t *testing.T) {
	table := NewTable().
		AddColumn("NAME").
		AddColumnWithMaxWidth("SUMMARY", 10)

	table.AddRow("Alamofire", "Elegant HTTP networking in Swift")
	table.AddRow("B")

	assert.Equal(t, "---------  ----------", table.SeparatorRow())
	require.Len(t, table.rows, 2)
	assert.Equal(t, "Elegant H…", table.rows[0][1])
	assert.Equal(t, "", table.rows[1][1])
}

// TestTableFormatRow tests padding of all but the last column.
func TestTableFormatRow(t *testing.T) {
	table := NewTable().
		AddColumn("NAME").
		AddColumn("LOCAL").
		AddColumn("SWIFT")

	assert.Equal(t, "NAME  LOCAL  SWIFT", table.HeaderRow())
	assert.Equal(t, "B     no     yes", table.FormatRow("B", "no", "yes"))
	assert.Equal(t, "B            ", table.FormatRow("B"))
	assert.Equal(t, "B     no     yes", table.FormatRow("B", "no", "yes", "extra"))
}

// TestTableFprint tests full rendering with unicode values.
func TestTableFprint(t *testing.T) {
	table := NewTable().AddColumn("NAME").AddColumn("VERSION")
	table.AddRow("日本", "1.0.0")
	table.AddRow("B", "2.1.0")

	var buf bytes.Buffer
	require.NoError(t, table.Fprint(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME  VERSION", lines[0])
	assert.Equal(t, "----  -------", lines[1])
	assert.Equal(t, "日本  1.0.0", lines[2])
	assert.Equal(t, "B     2.1.0", lines[3])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

// TestTableFprint_Error tests that write failures are returned.
func TestTableFprint_Error(t *testing.T) {
	err := NewTable().AddColumn("NAME").Fprint(failingWriter{})
	assert.EqualError(t, err, "closed")
}
