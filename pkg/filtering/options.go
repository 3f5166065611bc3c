package filtering

import (
	"fmt"
	"strings"
)

// TriState is a boolean criterion that may also be unset.
type TriState int

const (
	// Unset places no constraint on the field.
	Unset TriState = iota
	// True keeps only records whose field is present and true.
	True
	// False keeps only records whose field is present and false.
	False
)

// TriStateOf converts a plain boolean into a set TriState.
//
// Parameters:
//   - b: The boolean value
//
// Returns:
//   - TriState: True or False
func TriStateOf(b bool) TriState {
	if b {
		return True
	}
	return False
}

// IsSet reports whether the tri-state constrains anything.
func (t TriState) IsSet() bool {
	return t == True || t == False
}

// Holds reports whether an optional boolean satisfies the tri-state.
//
// Unset holds for everything. A set state never holds for an absent value.
//
// Parameters:
//   - v: The record's optional boolean
//
// Returns:
//   - bool: true if v satisfies the constraint
func (t TriState) Holds(v *bool) bool {
	switch t {
	case True:
		return v != nil && *v
	case False:
		return v != nil && !*v
	default:
		return true
	}
}

// String returns "unset", "true" or "false".
func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// Criteria is the full set of predicates for one filter run.
//
// Every field is optional; a nil string pointer or an Unset tri-state places
// no constraint. A record survives only when every set predicate holds.
//
// Fields:
//   - Name, Version, Summary, Description: Compared against the record field
//   - AuthorName, AuthorEmail: Matched against any author carrying that field
//   - SourceFile: Matched against any source file; records without a list pass
//   - Swift: Compared against uses_swift
//   - Local: Compared against is_local
//   - Mode: Global case and substring flags
type Criteria struct {
	Name        *string
	Version     *string
	AuthorName  *string
	AuthorEmail *string
	Summary     *string
	Description *string
	SourceFile  *string
	Swift       TriState
	Local       TriState
	Mode        MatchMode
}

// IsEmpty returns true if no predicate is set (all records would match).
//
// Mode alone does not constrain anything.
//
// Returns:
//   - bool: true if no filters are set
func (c Criteria) IsEmpty() bool {
	return c.Name == nil &&
		c.Version == nil &&
		c.AuthorName == nil &&
		c.AuthorEmail == nil &&
		c.Summary == nil &&
		c.Description == nil &&
		c.SourceFile == nil &&
		!c.Swift.IsSet() &&
		!c.Local.IsSet()
}

// Describe returns a one-line summary of the set predicates for logging.
//
// Returns:
//   - string: e.g. `name="B" swift=true mode=exact`, or "none" when empty
func (c Criteria) Describe() string {
	var parts []string
	add := func(key string, v *string) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s=%q", key, *v))
		}
	}
	add("name", c.Name)
	add("version", c.Version)
	add("author-name", c.AuthorName)
	add("author-email", c.AuthorEmail)
	add("summary", c.Summary)
	add("description", c.Description)
	add("source-file", c.SourceFile)
	if c.Swift.IsSet() {
		parts = append(parts, "swift="+c.Swift.String())
	}
	if c.Local.IsSet() {
		parts = append(parts, "local="+c.Local.String())
	}
	if len(parts) == 0 {
		return "none"
	}
	parts = append(parts, "mode="+c.Mode.String())
	return strings.Join(parts, " ")
}

// WithName returns a copy with the name criterion set.
//
// Parameters:
//   - name: Pattern for the pod name
//
// Returns:
//   - Criteria: New Criteria with updated Name field
//
// Example:
//
//	c := filtering.Criteria{}.WithName("B")
func (c Criteria) WithName(name string) Criteria {
	c.Name = &name
	return c
}

// WithVersion returns a copy with the version criterion set.
func (c Criteria) WithVersion(version string) Criteria {
	c.Version = &version
	return c
}

// WithAuthorName returns a copy with the author name criterion set.
func (c Criteria) WithAuthorName(name string) Criteria {
	c.AuthorName = &name
	return c
}

// WithAuthorEmail returns a copy with the author email criterion set.
func (c Criteria) WithAuthorEmail(email string) Criteria {
	c.AuthorEmail = &email
	return c
}

// WithSummary returns a copy with the summary criterion set.
func (c Criteria) WithSummary(summary string) Criteria {
	c.Summary = &summary
	return c
}

// WithDescription returns a copy with the description criterion set.
func (c Criteria) WithDescription(description string) Criteria {
	c.Description = &description
	return c
}

// WithSourceFile returns a copy with the source file criterion set.
func (c Criteria) WithSourceFile(file string) Criteria {
	c.SourceFile = &file
	return c
}

// WithSwift returns a copy with the swift tri-state set.
func (c Criteria) WithSwift(t TriState) Criteria {
	c.Swift = t
	return c
}

// WithLocal returns a copy with the local tri-state set.
func (c Criteria) WithLocal(t TriState) Criteria {
	c.Local = t
	return c
}

// WithMode returns a copy with the matching mode set.
//
// Parameters:
//   - caseInsensitive: Ignore case for every string criterion
//   - substring: Use containment for every string criterion
//
// Returns:
//   - Criteria: New Criteria with updated Mode
func (c Criteria) WithMode(caseInsensitive, substring bool) Criteria {
	c.Mode = MatchMode{CaseInsensitive: caseInsensitive, Substring: substring}
	return c
}
