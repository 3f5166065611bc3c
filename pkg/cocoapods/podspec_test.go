package cocoapods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/podquery/pkg/record"
	"github.com/ajxudir/podquery/pkg/source"
)

const samplePodspec = `{
  "name": "E",
  "version": "3.21.0",
  "summary": "Protocol Buffers runtime",
  "homepage": "https://example.com/e",
  "license": {"type": "BSD-3-Clause", "file": "LICENSE"},
  "authors": {"Zed": "zed@example.com", "Amy": null},
  "platforms": {"osx": "10.12", "ios": "9.0"},
  "dependencies": {"Z": [], "A": ["~> 1.0"]},
  "source_files": ["objectivec/*.{h,m}", "objectivec/Gen"],
  "subspecs": [
    {"name": "Swift", "source_files": "swift/**/*.swift", "subspecs": [{"name": "Extra"}]}
  ]
}`

// TestParsePodspec tests decoding of podspec JSON with ordered keys.
func TestParsePodspec(t *testing.T) {
	spec, err := ParsePodspec([]byte(samplePodspec))
	require.NoError(t, err)

	assert.Equal(t, "E", spec.Name)
	assert.Equal(t, "3.21.0", spec.Version)
	assert.Equal(t, "BSD-3-Clause", spec.License)
	assert.Equal(t, []source.Author{{Name: "Zed", Email: "zed@example.com"}, {Name: "Amy"}}, spec.Authors)
	assert.Equal(t, []record.Platform{{Name: "osx", Version: "10.12"}, {Name: "ios", Version: "9.0"}}, spec.Platforms)
	assert.Equal(t, []string{"Z", "A"}, spec.Dependencies)
	assert.Equal(t, []string{"objectivec/*.{h,m}", "objectivec/Gen"}, spec.SourceFiles)
	assert.Empty(t, spec.SwiftVersions)

	require.Len(t, spec.Subspecs, 1)
	assert.Equal(t, []string{"swift/**/*.swift"}, spec.Subspec("Swift").SourceFiles)
	assert.NotNil(t, spec.Subspec("Swift/Extra"))
	assert.Nil(t, spec.Subspec("Missing"))
}

// TestParsePodspec_Variants tests the alternative forms podspec attributes take.
func TestParsePodspec_Variants(t *testing.T) {
	t.Run("author string and license string", func(t *testing.T) {
		spec, err := ParsePodspec([]byte(`{"name":"A","author":"Solo","license":"MIT","swift_version":"5.0","platform":"ios"}`))
		require.NoError(t, err)
		assert.Equal(t, []source.Author{{Name: "Solo"}}, spec.Authors)
		assert.Equal(t, "MIT", spec.License)
		assert.Equal(t, []string{"5.0"}, spec.SwiftVersions)
		assert.Equal(t, []record.Platform{{Name: "ios"}}, spec.Platforms)
	})

	t.Run("author list and swift versions list", func(t *testing.T) {
		spec, err := ParsePodspec([]byte(`{"name":"A","authors":["One","Two"],"swift_versions":["5.5","5.9"],"source_files":"A/*.swift"}`))
		require.NoError(t, err)
		assert.Equal(t, []source.Author{{Name: "One"}, {Name: "Two"}}, spec.Authors)
		assert.Equal(t, []string{"5.5", "5.9"}, spec.SwiftVersions)
		assert.Equal(t, []string{"A/*.swift"}, spec.SourceFiles)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParsePodspec([]byte(`{"name":`))
		assert.Error(t, err)
	})
}

// TestShardPath tests the spec repo shard layout.
func TestShardPath(t *testing.T) {
	parts := ShardPath("Alamofire")
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.Len(t, p, 1)
		assert.Contains(t, "0123456789abcdef", p)
	}
	assert.Equal(t, parts, ShardPath("Alamofire"))
}
