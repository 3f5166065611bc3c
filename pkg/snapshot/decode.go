package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	"github.com/ajxudir/podquery/pkg/record"
)

//go:embed schema.json
var schemaSource string

var recordSchema = jsonschema.MustCompileString("pod-query-snapshot.json", schemaSource)

// SchemaError reports a document that parsed but does not describe a list
// of records.
type SchemaError struct {
	Err error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return "snapshot does not match record schema: " + e.Reason()
}

// Unwrap returns the validation failure.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Reason returns the most specific validation message available.
func (e *SchemaError) Reason() string {
	var ve *jsonschema.ValidationError
	if stderrors.As(e.Err, &ve) {
		leaf := ve
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		if leaf.InstanceLocation == "" {
			return leaf.Message
		}
		return fmt.Sprintf("%s: %s", leaf.InstanceLocation, leaf.Message)
	}
	return e.Err.Error()
}

func isSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Decode parses a YAML or JSON snapshot.
//
// An empty or null document yields zero records. Empty strings and lists in
// the input are treated as absent, and authors with neither name nor email are
// dropped, matching how records are constructed.
//
// Parameters:
//   - data: Raw document bytes
//
// Returns:
//   - []record.Record: Decoded records, never nil on success
//   - error: A parse error, or *SchemaError when the shape is wrong
func Decode(data []byte) ([]record.Record, error) {
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	var generic any
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := recordSchema.Validate(generic); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var records []record.Record
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&records); err != nil {
		return nil, &SchemaError{Err: err}
	}

	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		out = append(out, normalize(r))
	}
	return out, nil
}

// normalize collapses empty strings and lists to absent values and drops
// authors left with neither a name nor an email.
func normalize(r record.Record) record.Record {
	var authors []record.Author
	for _, a := range r.Authors {
		if author, ok := record.NewAuthor(deref(a.Name), deref(a.Email)); ok {
			authors = append(authors, author)
		}
	}
	r.Authors = authors
	r.Version = compact(r.Version)
	r.RootDirectory = compact(r.RootDirectory)
	r.PodspecFile = compact(r.PodspecFile)
	r.License = compact(r.License)
	r.Summary = compact(r.Summary)
	r.Description = compact(r.Description)
	r.Homepage = compact(r.Homepage)
	r.ReadmeFile = compact(r.ReadmeFile)
	if len(r.Platforms) == 0 {
		r.Platforms = nil
	}
	r.SwiftVersions = record.Strings(r.SwiftVersions)
	r.Dependencies = record.Strings(r.Dependencies)
	r.SourceFiles = record.Strings(r.SourceFiles)
	return r
}

func deref(s *string) string {
	v, _ := record.Value(s)
	return v
}

func compact(s *string) *string {
	return record.String(deref(s))
}
