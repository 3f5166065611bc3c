package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/podquery/pkg/record"
)

// Encode serializes records in the given format.
//
// A nil slice is written as an empty list.
//
// Parameters:
//   - format: FormatYAML or FormatJSON
//   - records: Records to serialize
//
// Returns:
//   - []byte: The document
//   - error: Encoding failure or unknown format
func Encode(format Format, records []record.Record) ([]byte, error) {
	if records == nil {
		records = []record.Record{}
	}
	switch format {
	case FormatYAML:
		return EncodeYAML(records)
	case FormatJSON:
		return EncodeJSON(records)
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// EncodeYAML writes records as block YAML with a two-space indent.
func EncodeYAML(records []record.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON writes records as indented JSON without HTML escaping.
func EncodeJSON(records []record.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
