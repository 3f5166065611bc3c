// Package filtering provides the predicate engine for pod records.
//
// Basic Filtering:
//
// Build Criteria with the fields to constrain; anything left nil or Unset
// places no constraint:
//
//	c := filtering.Criteria{}.
//	    WithSourceFile("e.pbobjc.h").
//	    WithMode(true, true)
//	matched := filtering.FilterRecords(records, c)
//
// All criteria combine by logical AND. The same MatchMode (case-insensitive,
// substring) applies to every string criterion.
//
// Matching:
//
// The single-field comparison is exposed directly:
//
//	filtering.Matches("alice", "Alice", true, false) // true
package filtering
