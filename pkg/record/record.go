// Package record defines the flat, exportable metadata record for a single pod.
//
// A Record is sparse: optional values are pointers or slices tagged with
// omitempty, so an absent value is never written as null, "" or []. Reading a
// snapshot back leaves the same fields nil, which consumers treat as "no value".
package record

// Record represents one pod's flattened metadata.
//
// Field order is the serialization order for both YAML and JSON.
//
// Fields:
//   - Name: Root pod name (always present)
//   - Version: Resolved version string
//   - Authors: Authors with at least a name or an email
//   - IsLocal: Whether the pod is sourced from a local path
//   - RootDirectory: Absolute directory holding the pod's files
//   - PodspecFile: Local podspec path relative to RootDirectory
//   - License: License type
//   - Summary, Description, Homepage: Podspec text attributes
//   - UsesSwift: Whether the pod compiles Swift sources
//   - SwiftVersions: Declared Swift versions (absent when none apply)
//   - ReadmeFile: Readme path relative to RootDirectory
//   - Platforms: Supported platforms and deployment targets
//   - Dependencies: Names of the pod's declared dependencies (absent when none)
//   - SourceFiles: Source paths relative to RootDirectory
type Record struct {
	Name          string     `yaml:"name" json:"name"`
	Version       *string    `yaml:"version,omitempty" json:"version,omitempty"`
	Authors       []Author   `yaml:"authors,omitempty" json:"authors,omitempty"`
	IsLocal       *bool      `yaml:"is_local,omitempty" json:"is_local,omitempty"`
	RootDirectory *string    `yaml:"root_directory,omitempty" json:"root_directory,omitempty"`
	PodspecFile   *string    `yaml:"podspec_file,omitempty" json:"podspec_file,omitempty"`
	License       *string    `yaml:"license,omitempty" json:"license,omitempty"`
	Summary       *string    `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description   *string    `yaml:"description,omitempty" json:"description,omitempty"`
	Homepage      *string    `yaml:"homepage,omitempty" json:"homepage,omitempty"`
	UsesSwift     *bool      `yaml:"uses_swift,omitempty" json:"uses_swift,omitempty"`
	SwiftVersions []string   `yaml:"swift_versions,omitempty" json:"swift_versions,omitempty"`
	ReadmeFile    *string    `yaml:"readme_file,omitempty" json:"readme_file,omitempty"`
	Platforms     []Platform `yaml:"platforms,omitempty" json:"platforms,omitempty"`
	Dependencies  []string   `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	SourceFiles   []string   `yaml:"source_files,omitempty" json:"source_files,omitempty"`
}

// Author is a single podspec author. At least one of Name or Email is set.
type Author struct {
	Name  *string `yaml:"name,omitempty" json:"name,omitempty"`
	Email *string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Platform is a supported platform with its deployment target.
type Platform struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

// HasSourceFiles reports whether the record carries a source file list.
//
// An empty list is indistinguishable from an absent one once serialized,
// so both report false.
//
// Returns:
//   - bool: true if SourceFiles has at least one entry
func (r Record) HasSourceFiles() bool {
	return len(r.SourceFiles) > 0
}

// NewAuthor builds an author from raw name and email values.
//
// Empty values become absent. When both are empty the author is dropped
// and ok is false.
//
// Parameters:
//   - name: Author name, may be empty
//   - email: Author email, may be empty
//
// Returns:
//   - Author: The author entry
//   - bool: false if neither name nor email was given
func NewAuthor(name, email string) (Author, bool) {
	a := Author{Name: String(name), Email: String(email)}
	if a.Name == nil && a.Email == nil {
		return Author{}, false
	}
	return a, true
}

// String returns a pointer to s, or nil when s is empty.
//
// Parameters:
//   - s: The value
//
// Returns:
//   - *string: nil for "", otherwise a pointer to a copy of s
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Bool returns a pointer to b. Booleans are always present once computed.
func Bool(b bool) *bool {
	return &b
}

// Strings returns s, or nil when s is empty.
func Strings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Value dereferences an optional string.
//
// Parameters:
//   - s: Optional string
//
// Returns:
//   - string: The value, or "" when absent
//   - bool: true if the value is present
func Value(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
