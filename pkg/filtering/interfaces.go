package filtering

import (
	"github.com/ajxudir/podquery/pkg/record"
)

// RecordFilter defines the interface for filtering records.
//
// This interface enables testing code that depends on record filtering
// by allowing mock implementations to be substituted.
//
// Example:
//
//	type mockFilter struct {
//	    result []record.Record
//	}
//	func (m *mockFilter) Filter(recs []record.Record) []record.Record {
//	    return m.result
//	}
type RecordFilter interface {
	// Filter applies filtering logic to a slice of records.
	//
	// Parameters:
	//   - records: Records to filter
	//
	// Returns:
	//   - []record.Record: Filtered records in input order
	Filter(records []record.Record) []record.Record
}

// CriteriaFilter is an adapter that implements RecordFilter using Criteria.
//
// Example:
//
//	f := &filtering.CriteriaFilter{Criteria: filtering.Criteria{}.WithName("B")}
//	result := f.Filter(records)
type CriteriaFilter struct {
	Criteria Criteria
}

// Filter applies the criteria to records.
//
// Parameters:
//   - records: Records to filter
//
// Returns:
//   - []record.Record: Filtered records
func (f *CriteriaFilter) Filter(records []record.Record) []record.Record {
	return FilterRecords(records, f.Criteria)
}

// FilterFunc adapts a plain function to RecordFilter.
type FilterFunc func(records []record.Record) []record.Record

// Filter calls f.
func (f FilterFunc) Filter(records []record.Record) []record.Record { return f(records) }

// Verify that the adapters implement the RecordFilter interface.
var (
	_ RecordFilter = (*CriteriaFilter)(nil)
	_ RecordFilter = FilterFunc(nil)
)
