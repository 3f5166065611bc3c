package source

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/ajxudir/podquery/pkg/record"
)

var errNoBackend = stderrors.New("no backend configured")

// Target is the un-flattened view of one resolved pod.
//
// Paths are absolute. Fields left at their zero value become absent in the
// projected record.
//
// Fields:
//   - Name: Resolved name, possibly a subspec ("Firebase/Core")
//   - RootName: Name of the root spec ("Firebase"); empty means Name
//   - Version: Resolved version
//   - Authors: Podspec authors in declaration order
//   - Local: Whether the pod is a development pod
//   - RootDir: Directory holding the pod's files
//   - PodspecPath: Project-local podspec file, if one exists
//   - License: License type
//   - Summary: One-line summary
//   - Description: Long description
//   - Homepage: Project homepage URL
//   - HasSpec: Whether a podspec was found; without one only identity
//     fields and Dependencies are projected
//   - UsesSwift: Whether any expanded source file is Swift
//   - SwiftVersions: Declared Swift versions
//   - ReadmePath: Readme file, if one exists
//   - Platforms: Supported platforms with deployment targets
//   - Dependencies: Names of the pods this one requires
//   - SourceFiles: Expanded source globs
type Target struct {
	Name          string
	RootName      string
	Version       string
	Authors       []Author
	Local         bool
	RootDir       string
	PodspecPath   string
	License       string
	Summary       string
	Description   string
	Homepage      string
	HasSpec       bool
	UsesSwift     bool
	SwiftVersions []string
	ReadmePath    string
	Platforms     []record.Platform
	Dependencies  []string
	SourceFiles   []string
}

// Author is a raw podspec author pair; either value may be empty.
type Author struct {
	Name  string
	Email string
}

// Root returns RootName, falling back to the part of Name before the first "/".
func (t Target) Root() string {
	if t.RootName != "" {
		return t.RootName
	}
	if i := strings.Index(t.Name, "/"); i >= 0 {
		return t.Name[:i]
	}
	return t.Name
}

// Project flattens a target into a record.
//
// The record is named after the root pod. Paths are made relative to
// RootDir, empty lists become absent, and authors with neither a
// name nor an email are dropped.
//
// Parameters:
//   - t: Target to flatten
//
// Returns:
//   - record.Record: The sparse record
func Project(t Target) record.Record {
	r := record.Record{
		Name:    t.Root(),
		Version: record.String(t.Version),
		IsLocal: record.Bool(t.Local),
	}
	r.Dependencies = record.Strings(t.Dependencies)
	if !t.HasSpec {
		return r
	}

	for _, a := range t.Authors {
		if author, ok := record.NewAuthor(a.Name, a.Email); ok {
			r.Authors = append(r.Authors, author)
		}
	}

	r.RootDirectory = record.String(t.RootDir)
	r.PodspecFile = record.String(relativeTo(t.RootDir, t.PodspecPath))
	r.License = record.String(t.License)
	r.Summary = record.String(t.Summary)
	r.Description = record.String(t.Description)
	r.Homepage = record.String(t.Homepage)
	r.UsesSwift = record.Bool(t.UsesSwift)
	r.SwiftVersions = record.Strings(t.SwiftVersions)
	r.ReadmeFile = record.String(relativeTo(t.RootDir, t.ReadmePath))
	if len(t.Platforms) > 0 {
		r.Platforms = t.Platforms
	}

	if len(t.SourceFiles) > 0 {
		files := make([]string, 0, len(t.SourceFiles))
		for _, f := range t.SourceFiles {
			files = append(files, relativeTo(t.RootDir, f))
		}
		r.SourceFiles = files
	}

	return r
}

// relativeTo returns path relative to root. Empty input stays empty, and a
// path that cannot be made relative is returned unchanged.
func relativeTo(root, path string) string {
	if path == "" || root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
