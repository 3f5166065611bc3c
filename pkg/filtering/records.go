package filtering

import (
	"github.com/ajxudir/podquery/pkg/record"
)

// FilterRecords keeps the records that satisfy every set criterion.
//
// The filter is stable: survivors keep their input order. With no criteria
// set the input comes back unchanged. The result is never nil, so an empty
// match still serializes as an empty list.
//
// Parameters:
//   - records: Candidate records
//   - c: Criteria to apply
//
// Returns:
//   - []record.Record: Matching records in input order
//
// Example:
//
//	c := filtering.Criteria{}.WithName("B")
//	matched := filtering.FilterRecords(records, c)
func FilterRecords(records []record.Record, c Criteria) []record.Record {
	filtered := make([]record.Record, 0, len(records))
	if c.IsEmpty() {
		return append(filtered, records...)
	}

	for _, r := range records {
		if MatchesRecord(r, c) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// MatchesRecord reports whether a single record satisfies every set criterion.
//
// Parameters:
//   - r: Record to check
//   - c: Criteria to apply
//
// Returns:
//   - bool: true if r survives the filter
func MatchesRecord(r record.Record, c Criteria) bool {
	return matchesField(c.Name, &r.Name, c.Mode) &&
		matchesField(c.Version, r.Version, c.Mode) &&
		matchesAuthor(c.AuthorName, r.Authors, authorName, c.Mode) &&
		matchesAuthor(c.AuthorEmail, r.Authors, authorEmail, c.Mode) &&
		matchesField(c.Summary, r.Summary, c.Mode) &&
		matchesField(c.Description, r.Description, c.Mode) &&
		matchesSourceFile(c.SourceFile, r, c.Mode) &&
		c.Swift.Holds(r.UsesSwift) &&
		c.Local.Holds(r.IsLocal)
}

// matchesField compares an optional pattern against an optional value.
// An unset pattern always holds; an absent value never matches a set pattern.
func matchesField(pattern, value *string, mode MatchMode) bool {
	if pattern == nil {
		return true
	}
	if value == nil {
		return false
	}
	return NewMatcher(*pattern, mode).Match(*value)
}

func authorName(a record.Author) *string  { return a.Name }
func authorEmail(a record.Author) *string { return a.Email }

// matchesAuthor holds when any author has the selected field present and matching.
func matchesAuthor(pattern *string, authors []record.Author, field func(record.Author) *string, mode MatchMode) bool {
	if pattern == nil {
		return true
	}
	m := NewMatcher(*pattern, mode)
	for _, a := range authors {
		if v := field(a); v != nil && m.Match(*v) {
			return true
		}
	}
	return false
}

// matchesSourceFile holds vacuously for records without a source list.
func matchesSourceFile(pattern *string, r record.Record, mode MatchMode) bool {
	if pattern == nil || !r.HasSourceFiles() {
		return true
	}
	return MatchAny(NewMatcher(*pattern, mode), r.SourceFiles)
}
