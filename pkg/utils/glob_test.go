package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandBraces(t *testing.T) {
	tests := []struct {
		pattern  string
		expected []string
	}{
		{"*.h", []string{"*.h"}},
		{"*.{h,m}", []string{"*.h", "*.m"}},
		{"{A,B}/*.{h,m}", []string{"A/*.h", "A/*.m", "B/*.h", "B/*.m"}},
		{"x.{h,{m,mm}}", []string{"x.h", "x.m", "x.mm"}},
		{"x.{h}", []string{"x.h"}},
		{"x.{h,}", []string{"x.h", "x."}},
		{"unclosed{a,b", []string{"unclosed{a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandBraces(tt.pattern))
		})
	}
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path     string
		pattern  string
		expected bool
	}{
		{"E.podspec.json", "E.podspec.json", true},
		{"Sources/Gen/E.pbobjc.h", "**/*.h", true},
		{"E.h", "**/*.h", true},
		{"Sources/E.h", "*.h", false},
		{"Sources/E.h", "Sources/*.{h,m}", true},
		{"Sources/E.m", "Sources/*.{h,m}", true},
		{"Sources/E.swift", "Sources/*.{h,m}", false},
		{"Classes/a/b/c.swift", "Classes/**/*.{swift,m}", true},
		{"Classes/c.m", "Classes/**/*.{swift,m}", true},
		{"a.h", "?.h", true},
		{"ab.h", "?.h", false},
		{"Private/x.h", "!Private/*", false},
		{"Public/x.h", "!Private/*", true},
		{"[abc", "[abc", true},
	}

	for _, tt := range tests {
		result := MatchGlob(tt.path, tt.pattern)
		assert.Equal(t, tt.expected, result, "path: %s, pattern: %s", tt.path, tt.pattern)
	}
}

func TestGlobToRegex(t *testing.T) {
	tests := []struct {
		pattern  string
		expected string
	}{
		{"*.h", "^[^/]*\\.h$"},
		{"**/*.m", "^(?:.*/)?[^/]*\\.m$"},
		{"file?", "^file[^/]$"},
		{"Sources/**", "^Sources/.*$"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, globToRegex(tt.pattern))
	}
}

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("//"), 0o644))
	}
}

func TestFindFilesByPatterns(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"E.h",
		"Sources/E.m",
		"Sources/Gen/E.pbobjc.h",
		"Sources/Gen/E.pbobjc.m",
		"Sources/Swift/E.swift",
		".git/config.h",
		"README.md",
	)

	t.Run("recursive with braces", func(t *testing.T) {
		got, err := FindFilesByPatterns(root, []string{"Sources/**/*.{h,m}"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "Sources", "E.m"),
			filepath.Join(root, "Sources", "Gen", "E.pbobjc.h"),
			filepath.Join(root, "Sources", "Gen", "E.pbobjc.m"),
		}, got)
	})

	t.Run("top level only", func(t *testing.T) {
		got, err := FindFilesByPatterns(root, []string{"*.h"})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "E.h")}, got)
	})

	t.Run("skips vcs dirs and dedupes", func(t *testing.T) {
		got, err := FindFilesByPatterns(root, []string{"**/*.h", "**/E.h"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, p := range got {
			assert.NotContains(t, p, ".git")
		}
	})

	t.Run("no patterns", func(t *testing.T) {
		got, err := FindFilesByPatterns(root, []string{""})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := FindFilesByPatterns(filepath.Join(root, "nope"), []string{"*"})
		assert.Error(t, err)
	})
}
