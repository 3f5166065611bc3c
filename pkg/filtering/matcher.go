package filtering

import (
	"strings"
)

// MatchMode holds the global string-matching flags for a query.
//
// The same mode applies to every string criterion; there is no per-field
// override.
//
// Fields:
//   - CaseInsensitive: Lowercase both operands before comparing
//   - Substring: Match when the candidate contains the pattern
type MatchMode struct {
	// CaseInsensitive lowercases pattern and candidate before comparison.
	CaseInsensitive bool

	// Substring switches from exact equality to containment.
	Substring bool
}

// String returns a short description of the mode for logging.
//
// Returns:
//   - string: e.g. "exact", "substring,case-insensitive"
func (m MatchMode) String() string {
	kind := "exact"
	if m.Substring {
		kind = "substring"
	}
	if m.CaseInsensitive {
		return kind + ",case-insensitive"
	}
	return kind
}

// Matches compares a single pattern against a single candidate.
//
// With caseInsensitive both operands are lowercased first. With substring the
// match succeeds when candidate contains pattern; otherwise they must be
// equal. An empty pattern in substring mode matches every candidate.
//
// Parameters:
//   - pattern: The user-supplied search term
//   - candidate: The record value being tested
//   - caseInsensitive: Ignore case when comparing
//   - substring: Use containment instead of equality
//
// Returns:
//   - bool: true if candidate satisfies pattern
//
// Example:
//
//	filtering.Matches("e.pbobjc.h", "Sources/E.pbobjc.h", true, true) // true
//	filtering.Matches("B", "b", false, false)                         // false
func Matches(pattern, candidate string, caseInsensitive, substring bool) bool {
	if caseInsensitive {
		pattern = strings.ToLower(pattern)
		candidate = strings.ToLower(candidate)
	}
	if substring {
		return strings.Contains(candidate, pattern)
	}
	return candidate == pattern
}

// Matcher defines the interface for string matching strategies.
//
// Example:
//
//	matcher := filtering.NewMatcher("alice", filtering.MatchMode{CaseInsensitive: true})
//	if matcher.Match("Alice") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given value matches the pattern.
	//
	// Parameters:
	//   - value: String to test against the pattern
	//
	// Returns:
	//   - bool: true if value matches the pattern
	Match(value string) bool

	// String returns a string representation of the matcher.
	//
	// Returns:
	//   - string: Description of the pattern
	String() string
}

// ExactMatcher matches strings that exactly equal the pattern.
//
// Fields:
//   - Pattern: The exact string to match
//   - IgnoreCase: If true, lowercases both sides before comparing
//
// Example:
//
//	matcher := &filtering.ExactMatcher{Pattern: "AFNetworking", IgnoreCase: true}
//	matcher.Match("afnetworking")  // returns true
//	matcher.Match("AFNetworking2") // returns false
type ExactMatcher struct {
	// Pattern is the exact string to match.
	Pattern string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value exactly equals the pattern.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value equals pattern (respecting IgnoreCase)
func (m *ExactMatcher) Match(value string) bool {
	return Matches(m.Pattern, value, m.IgnoreCase, false)
}

// String returns the pattern string.
//
// Returns:
//   - string: The exact pattern being matched
func (m *ExactMatcher) String() string {
	return m.Pattern
}

// ContainsMatcher matches strings that contain the pattern.
//
// Fields:
//   - Substring: The substring to search for
//   - IgnoreCase: If true, lowercases both sides before searching
//
// Example:
//
//	matcher := &filtering.ContainsMatcher{Substring: "pbobjc"}
//	matcher.Match("Sources/E.pbobjc.h") // returns true
//	matcher.Match("Sources/E.m")        // returns false
type ContainsMatcher struct {
	// Substring is the string to search for within values.
	Substring string

	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool
}

// Match tests if value contains the substring.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value contains substring
func (m *ContainsMatcher) Match(value string) bool {
	return Matches(m.Substring, value, m.IgnoreCase, true)
}

// String returns the contains pattern.
//
// Returns:
//   - string: The substring wrapped in asterisks (e.g., "*substring*")
func (m *ContainsMatcher) String() string {
	return "*" + m.Substring + "*"
}

// NewMatcher creates the matcher for a pattern under the given mode.
//
// Parameters:
//   - pattern: The search term
//   - mode: Global matching flags
//
// Returns:
//   - Matcher: A ContainsMatcher in substring mode, an ExactMatcher otherwise
func NewMatcher(pattern string, mode MatchMode) Matcher {
	if mode.Substring {
		return &ContainsMatcher{Substring: pattern, IgnoreCase: mode.CaseInsensitive}
	}
	return &ExactMatcher{Pattern: pattern, IgnoreCase: mode.CaseInsensitive}
}

// MatchAny tests if any value in values satisfies matcher.
//
// Parameters:
//   - matcher: The matcher to apply
//   - values: Candidate strings
//
// Returns:
//   - bool: true if at least one value matches; false for an empty list
func MatchAny(matcher Matcher, values []string) bool {
	for _, v := range values {
		if matcher.Match(v) {
			return true
		}
	}
	return false
}

// Verify interface implementations.
var (
	_ Matcher = (*ExactMatcher)(nil)
	_ Matcher = (*ContainsMatcher)(nil)
)
