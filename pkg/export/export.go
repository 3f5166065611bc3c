// Package export writes query results: structured files for tooling and
// plain name listings for people.
package export

import (
	"fmt"
	"io"

	"github.com/ajxudir/podquery/pkg/output"
	"github.com/ajxudir/podquery/pkg/record"
	"github.com/ajxudir/podquery/pkg/snapshot"
	"github.com/ajxudir/podquery/pkg/verbose"
)

// summaryWidth caps the SUMMARY column of the long listing.
const summaryWidth = 50

// Export writes records to the requested files.
//
// The YAML file is written first, then the JSON file; an empty path skips
// that format. A failure stops the run, and a file already written stays on
// disk. Either path may end in .xz to compress the output.
//
// Parameters:
//   - records: Records to write; nil is written as an empty list
//   - yamlPath: YAML destination, or ""
//   - jsonPath: JSON destination, or ""
//
// Returns:
//   - error: An IOError for the first failed write
func Export(records []record.Record, yamlPath, jsonPath string) error {
	if yamlPath != "" {
		if err := writeAs(snapshot.FormatYAML, yamlPath, records); err != nil {
			return err
		}
	}
	if jsonPath != "" {
		if err := writeAs(snapshot.FormatJSON, jsonPath, records); err != nil {
			return err
		}
	}
	return nil
}

// writeAs writes records in format regardless of the path's extension.
func writeAs(format snapshot.Format, path string, records []record.Record) error {
	if err := snapshot.WriteFileAs(path, format, records); err != nil {
		return err
	}
	verbose.Debug("exported", "format", format, "path", path, "pods", len(records))
	return nil
}

// PrintNames writes one record name per line.
//
// Parameters:
//   - w: Destination, normally stdout
//   - records: Records to list in order
//
// Returns:
//   - error: The first write error, if any
func PrintNames(w io.Writer, records []record.Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// PrintTable writes an aligned listing with NAME, VERSION, LOCAL, SWIFT
// and SUMMARY columns. Absent values are shown as "-".
//
// Parameters:
//   - w: Destination, normally stdout
//   - records: Records to list in order
//
// Returns:
//   - error: The first write error, if any
func PrintTable(w io.Writer, records []record.Record) error {
	table := output.NewTable().
		AddColumn("NAME").
		AddColumn("VERSION").
		AddColumn("LOCAL").
		AddColumn("SWIFT").
		AddColumnWithMaxWidth("SUMMARY", summaryWidth)

	for _, r := range records {
		table.AddRow(
			r.Name,
			optional(r.Version),
			yesNo(r.IsLocal),
			yesNo(r.UsesSwift),
			optional(r.Summary),
		)
	}
	return table.Fprint(w)
}

func optional(s *string) string {
	if v, ok := record.Value(s); ok {
		return v
	}
	return "-"
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return "-"
	case *b:
		return "yes"
	default:
		return "no"
	}
}
