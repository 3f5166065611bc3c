package testutil

import (
	"path/filepath"
	"runtime"

	"github.com/ajxudir/podquery/pkg/record"
)

// RecordBuilder provides a fluent API for building test records.
//
// Use this builder to construct Record objects for testing purposes
// without needing to set all optional pointers manually.
type RecordBuilder struct {
	rec record.Record
}

// NewRecord creates a new RecordBuilder with the given name.
//
// Parameters:
//   - name: Pod name to set
//
// Returns:
//   - *RecordBuilder: New builder instance ready for method chaining
func NewRecord(name string) *RecordBuilder {
	return &RecordBuilder{rec: record.Record{Name: name}}
}

// WithVersion sets the version.
func (b *RecordBuilder) WithVersion(v string) *RecordBuilder {
	b.rec.Version = record.String(v)
	return b
}

// WithAuthor appends an author; empty values stay absent and an author with
// neither field is skipped.
//
// Parameters:
//   - name: Author name, may be empty
//   - email: Author email, may be empty
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithAuthor(name, email string) *RecordBuilder {
	if a, ok := record.NewAuthor(name, email); ok {
		b.rec.Authors = append(b.rec.Authors, a)
	}
	return b
}

// Local sets is_local.
func (b *RecordBuilder) Local(local bool) *RecordBuilder {
	b.rec.IsLocal = record.Bool(local)
	return b
}

// Swift sets uses_swift.
func (b *RecordBuilder) Swift(swift bool) *RecordBuilder {
	b.rec.UsesSwift = record.Bool(swift)
	return b
}

// WithSwiftVersions sets swift_versions.
func (b *RecordBuilder) WithSwiftVersions(versions ...string) *RecordBuilder {
	b.rec.SwiftVersions = record.Strings(versions)
	return b
}

// WithSummary sets the summary.
func (b *RecordBuilder) WithSummary(s string) *RecordBuilder {
	b.rec.Summary = record.String(s)
	return b
}

// WithDescription sets the description.
func (b *RecordBuilder) WithDescription(s string) *RecordBuilder {
	b.rec.Description = record.String(s)
	return b
}

// WithHomepage sets the homepage.
func (b *RecordBuilder) WithHomepage(s string) *RecordBuilder {
	b.rec.Homepage = record.String(s)
	return b
}

// WithLicense sets the license.
func (b *RecordBuilder) WithLicense(s string) *RecordBuilder {
	b.rec.License = record.String(s)
	return b
}

// WithRootDirectory sets root_directory.
func (b *RecordBuilder) WithRootDirectory(s string) *RecordBuilder {
	b.rec.RootDirectory = record.String(s)
	return b
}

// WithPodspecFile sets podspec_file.
func (b *RecordBuilder) WithPodspecFile(s string) *RecordBuilder {
	b.rec.PodspecFile = record.String(s)
	return b
}

// WithReadme sets readme_file.
func (b *RecordBuilder) WithReadme(s string) *RecordBuilder {
	b.rec.ReadmeFile = record.String(s)
	return b
}

// WithPlatform appends a platform.
func (b *RecordBuilder) WithPlatform(name, version string) *RecordBuilder {
	b.rec.Platforms = append(b.rec.Platforms, record.Platform{Name: name, Version: version})
	return b
}

// WithDependencies sets dependencies.
func (b *RecordBuilder) WithDependencies(deps ...string) *RecordBuilder {
	b.rec.Dependencies = record.Strings(deps)
	return b
}

// WithSourceFiles sets source_files.
func (b *RecordBuilder) WithSourceFiles(files ...string) *RecordBuilder {
	b.rec.SourceFiles = record.Strings(files)
	return b
}

// Build returns the constructed record.
//
// Returns:
//   - record.Record: The record with all configured fields
func (b *RecordBuilder) Build() record.Record {
	return b.rec
}

// Names returns the names of records in order.
//
// Parameters:
//   - records: Records to extract names from
//
// Returns:
//   - []string: Record names, same length and order as records
func Names(records []record.Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

// FixtureRecords returns the eight-pod fixture also stored in testdata/cache.yaml.
//
// Every pod has a source list. Exactly one pod is named "B" and exactly one
// (E) owns a file containing "e.pbobjc.h" when compared case-insensitively.
//
// Returns:
//   - []record.Record: Pods A through H
func FixtureRecords() []record.Record {
	return []record.Record{
		NewRecord("A").WithVersion("1.0.0").
			WithAuthor("Alice", "alice@example.com").
			Local(false).
			WithLicense("MIT").
			WithSummary("Networking layer for A").
			WithHomepage("https://example.com/a").
			Swift(false).
			WithPlatform("ios", "9.0").
			WithSourceFiles("A/A.h", "A/A.m").
			Build(),
		NewRecord("B").WithVersion("2.1.0").
			WithAuthor("Bob", "").
			Local(false).
			WithSummary("Swift helpers").
			Swift(true).
			WithSwiftVersions("5.0").
			WithPlatform("ios", "12.0").
			WithDependencies("A").
			WithSourceFiles("Sources/B.swift").
			Build(),
		NewRecord("C").WithVersion("0.3.1").
			WithAuthor("Carol", "carol@example.com").
			WithAuthor("", "bob@x.com").
			Local(true).
			WithRootDirectory("/work/LocalPods/C").
			WithPodspecFile("C.podspec.json").
			Swift(false).
			WithPlatform("ios", "10.0").
			WithPlatform("osx", "10.12").
			WithSourceFiles("Classes/C.h", "Classes/C.m").
			Build(),
		NewRecord("D").WithVersion("4.0.0").
			WithAuthor("", "dana@example.com").
			Local(true).
			WithDescription("Local Swift module used by the app target.").
			Swift(true).
			WithSwiftVersions("5.5", "5.9").
			WithSourceFiles("D/D.swift").
			Build(),
		NewRecord("E").WithVersion("3.21.0").
			WithAuthor("Protobuf Team", "protobuf@example.com").
			Local(false).
			WithLicense("BSD-3-Clause").
			WithSummary("Protocol Buffers runtime").
			Swift(false).
			WithReadme("README.md").
			WithPlatform("ios", "9.0").
			WithSourceFiles("objectivec/GPBMessage.h", "objectivec/Gen/E.pbobjc.h", "objectivec/Gen/E.pbobjc.m").
			Build(),
		NewRecord("F").WithVersion("1.0.0").
			WithAuthor("Frank", "").
			Local(false).
			Swift(false).
			WithDependencies("E", "A").
			WithSourceFiles("F/F.h", "F/F.m").
			Build(),
		NewRecord("G").WithVersion("7.2.0").
			WithAuthor("Grace", "grace@example.com").
			Local(false).
			WithSummary("Analytics").
			Swift(true).
			WithSwiftVersions("5.0").
			WithSourceFiles("G/Analytics.swift").
			Build(),
		NewRecord("H").WithVersion("0.0.1").
			Local(false).
			Swift(false).
			WithSourceFiles("H/H.c").
			Build(),
	}
}

// FixtureCachePath returns the absolute path of testdata/cache.yaml.
//
// Returns:
//   - string: Path to the YAML snapshot of FixtureRecords
func FixtureCachePath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", "cache.yaml")
}
