// Package output provides the column-aligned table used by the long listing.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/podquery/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - MaxWidth: Cells wider than this are truncated; 0 means unlimited
type Column struct {
	Header   string
	Width    int
	MaxWidth int
}

const columnSeparator = "  "

// Table provides a table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
//
// Fields:
//   - columns: List of columns with their headers and widths
//   - rows: Buffered data rows, already clipped to each column's MaxWidth
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a new table formatter with a two-space separator.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{columns: make([]Column, 0)}
}

// AddColumn adds a column whose initial width is the header's display width.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
	})
	return t
}

// AddColumnWithMaxWidth adds a column whose cells are truncated to maxWidth.
//
// Parameters:
//   - header: The text to display in the column header
//   - maxWidth: Maximum cell width in characters; 0 disables truncation
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumnWithMaxWidth(header string, maxWidth int) *Table {
	t.AddColumn(header)
	t.columns[len(t.columns)-1].MaxWidth = maxWidth
	return t
}

// AddRow buffers a data row and widens columns to fit it.
//
// Values beyond the column count are ignored; missing values are empty.
//
// Parameters:
//   - values: One string per column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	for i := range t.columns {
		if i < len(values) {
			row[i] = utils.Truncate(values[i], t.columns[i].MaxWidth)
		}
		if w := utils.DisplayWidth(row[i]); w > t.columns[i].Width {
			t.columns[i].Width = w
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// HeaderRow returns the formatted header row string.
//
// Returns:
//   - string: Headers padded to their column widths
func (t *Table) HeaderRow() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	return t.FormatRow(headers...)
}

// SeparatorRow returns a separator row with dashes matching column widths.
//
// Returns:
//   - string: Dash sequences for each column
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, columnSeparator)
}

// FormatRow pads each value to its column width.
//
// The last column is not padded, so lines carry no trailing spaces.
//
// Parameters:
//   - values: One string per column
//
// Returns:
//   - string: Formatted row with values separated by two spaces
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		if i == len(t.columns)-1 {
			parts[i] = val
		} else {
			parts[i] = utils.ToWidth(val, col.Width)
		}
	}
	return strings.Join(parts, columnSeparator)
}

// Fprint writes the header, separator and all buffered rows.
//
// Parameters:
//   - w: The writer to output to (e.g., os.Stdout or a buffer)
//
// Returns:
//   - error: The first write error, if any
func (t *Table) Fprint(w io.Writer) error {
	lines := []string{t.HeaderRow(), t.SeparatorRow()}
	for _, row := range t.rows {
		lines = append(lines, t.FormatRow(row...))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
