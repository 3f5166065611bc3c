// Package snapshot reads and writes serialized pod record lists.
//
// A snapshot is a YAML or JSON document holding a sequence of records. The
// format is chosen from the file extension (.json, otherwise YAML). A
// trailing .xz adds xz compression on top of either format:
//
//	records, err := snapshot.ReadFile("pods.yaml.xz")
//	err = snapshot.WriteFile("pods.json", records)
//
// Reading accepts both formats regardless of extension. Documents are
// normalized to JSON, checked against the record schema and then decoded,
// so a YAML and a JSON snapshot of the same records decode identically.
package snapshot

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/record"
)

// Format identifies a snapshot serialization.
type Format string

const (
	// FormatYAML is block-style YAML with a two-space indent.
	FormatYAML Format = "yaml"
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
)

// xzExt marks a compressed snapshot.
const xzExt = ".xz"

// IsCompressed reports whether path names an xz-compressed snapshot.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), xzExt)
}

// FormatForPath selects the serialization for a file name.
//
// The .xz suffix is ignored when present. ".json" selects JSON; every other
// extension, including none, selects YAML.
//
// Parameters:
//   - path: Snapshot file path
//
// Returns:
//   - Format: FormatJSON or FormatYAML
//
// Example:
//
//	snapshot.FormatForPath("out.json.xz") // FormatJSON
//	snapshot.FormatForPath("cache.yml")   // FormatYAML
func FormatForPath(path string) Format {
	if IsCompressed(path) {
		path = path[:len(path)-len(xzExt)]
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ReadFile loads the records stored at path.
//
// Parameters:
//   - path: Snapshot file, optionally xz-compressed
//
// Returns:
//   - []record.Record: Decoded records in file order; empty for an empty document
//   - error: *errors.IOError when the file cannot be read or parsed,
//     *errors.MalformedCacheError when it parses but is not a record list
func ReadFile(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read cache", path, err)
	}

	if IsCompressed(path) {
		data, err = decompress(data)
		if err != nil {
			return nil, errors.NewIOError("decompress cache", path, err)
		}
	}

	records, err := Decode(data)
	if err != nil {
		if se, ok := isSchemaError(err); ok {
			return nil, errors.NewMalformedCacheError(path, se.Reason())
		}
		return nil, errors.NewIOError("parse cache", path, err)
	}

	return records, nil
}

// WriteFile serializes records to path in the format its extension selects.
//
// Parameters:
//   - path: Destination file; a .xz suffix compresses the output
//   - records: Records to write
//
// Returns:
//   - error: *errors.IOError if encoding or writing fails
func WriteFile(path string, records []record.Record) error {
	return WriteFileAs(path, FormatForPath(path), records)
}

// WriteFileAs serializes records to path in an explicit format.
//
// The extension still decides compression: a .xz suffix compresses the
// output whatever the format.
//
// Parameters:
//   - path: Destination file
//   - format: FormatYAML or FormatJSON
//   - records: Records to write
//
// Returns:
//   - error: *errors.IOError if encoding or writing fails
func WriteFileAs(path string, format Format, records []record.Record) error {
	op := "write " + string(format)

	data, err := Encode(format, records)
	if err != nil {
		return errors.NewIOError(op, path, err)
	}

	if IsCompressed(path) {
		data, err = compress(data)
		if err != nil {
			return errors.NewIOError(op, path, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIOError(op, path, err)
	}
	return nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
