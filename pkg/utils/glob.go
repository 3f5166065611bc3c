package utils

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// regexCache stores compiled glob regexes to avoid recompilation.
// Podspecs tend to repeat the same source patterns across subspecs.
var regexCache sync.Map

// getOrCompileRegex retrieves a compiled regex from cache or compiles and caches it.
//
// Parameters:
//   - pattern: The regex pattern string to compile
//
// Returns:
//   - *regexp.Regexp: The compiled regular expression
//   - error: Returns compilation error if pattern is invalid
func getOrCompileRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		if re, typeOK := cached.(*regexp.Regexp); typeOK {
			return re, nil
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexCache.Store(pattern, re)
	return re, nil
}

// ExpandBraces expands shell-style brace alternatives.
//
// Nested braces are expanded recursively. A pattern without a balanced
// brace pair is returned unchanged as the single element.
//
// Parameters:
//   - pattern: Glob pattern such as "Classes/**/*.{h,m}"
//
// Returns:
//   - []string: One pattern per alternative, in order
//
// Example:
//
//	utils.ExpandBraces("*.{h,m}") // []string{"*.h", "*.m"}
func ExpandBraces(pattern string) []string {
	open := strings.IndexByte(pattern, '{')
	if open < 0 {
		return []string{pattern}
	}

	depth := 0
	closeIdx := -1
	var commas []int
	for i := open; i < len(pattern) && closeIdx < 0; i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closeIdx = i
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
	}
	if closeIdx < 0 {
		return []string{pattern}
	}

	prefix, suffix := pattern[:open], pattern[closeIdx+1:]
	var alternatives []string
	start := open + 1
	for _, c := range commas {
		alternatives = append(alternatives, pattern[start:c])
		start = c + 1
	}
	alternatives = append(alternatives, pattern[start:closeIdx])

	var result []string
	for _, alt := range alternatives {
		result = append(result, ExpandBraces(prefix+alt+suffix)...)
	}
	return result
}

// MatchGlob checks if a path matches a glob pattern.
//
// Supported patterns:
//   - * matches any sequence of characters within a path segment
//   - ** matches zero or more path segments recursively
//   - ? matches a single character
//   - {a,b} matches either alternative
//   - ! prefix negates the match
//
// Parameters:
//   - path: The file path to match against
//   - pattern: The glob pattern
//
// Returns:
//   - bool: true if path matches pattern (or doesn't match if negated), false otherwise
func MatchGlob(path, pattern string) bool {
	negate := false
	if strings.HasPrefix(pattern, "!") {
		negate = true
		pattern = pattern[1:]
	}

	path = filepath.ToSlash(path)

	matched := false
	for _, p := range ExpandBraces(filepath.ToSlash(pattern)) {
		if matchSingle(path, p) {
			matched = true
			break
		}
	}

	if negate {
		return !matched
	}
	return matched
}

// matchSingle matches a brace-free pattern.
func matchSingle(path, pattern string) bool {
	if !strings.Contains(pattern, "**") {
		if ok, err := filepath.Match(pattern, path); err == nil {
			return ok
		}
	}
	re, err := getOrCompileRegex(globToRegex(pattern))
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// globToRegex converts a glob pattern to a regular expression pattern.
//
// It performs the following conversions:
//   - **/ becomes (?:.*/)?  (optional path segments)
//   - ** becomes .*         (any characters including /)
//   - * becomes [^/]*       (any characters except /)
//   - ? becomes [^/]        (single character)
//   - Other characters are escaped with regexp.QuoteMeta
//
// Parameters:
//   - pattern: The glob pattern to convert
//
// Returns:
//   - string: The equivalent regular expression pattern
func globToRegex(pattern string) string {
	var builder strings.Builder
	builder.WriteString("^")

	for i := 0; i < len(pattern); {
		if strings.HasPrefix(pattern[i:], "**/") {
			builder.WriteString("(?:.*/)?")
			i += 3
			continue
		}
		if strings.HasPrefix(pattern[i:], "**") {
			builder.WriteString(".*")
			i += 2
			continue
		}
		switch pattern[i] {
		case '*':
			builder.WriteString("[^/]*")
		case '?':
			builder.WriteString("[^/]")
		default:
			builder.WriteString(regexp.QuoteMeta(string(pattern[i])))
		}
		i++
	}

	builder.WriteString("$")
	return builder.String()
}

// skipDirs are never descended into while expanding globs.
var skipDirs = map[string]struct{}{
	".git": {},
	".svn": {},
	".hg":  {},
}

// FindFilesByPatterns finds regular files under baseDir matching any pattern.
//
// Patterns are matched against the slash-separated path relative to baseDir,
// so "*.h" only matches top-level headers while "**/*.h" matches at any
// depth. Empty patterns are ignored.
//
// Parameters:
//   - baseDir: The directory to search; uses "." if empty
//   - patterns: Glob patterns (supports **, *, ?, {a,b})
//
// Returns:
//   - []string: Sorted, deduplicated absolute paths; nil if none found
//   - error: Returns error if baseDir cannot be walked
func FindFilesByPatterns(baseDir string, patterns []string) ([]string, error) {
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	var active []string
	for _, p := range patterns {
		if p != "" {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	var matches []string
	err = filepath.WalkDir(absBase, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if _, skip := skipDirs[d.Name()]; skip && path != absBase {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(absBase, path)
		if relErr != nil {
			return nil
		}
		for _, pattern := range active {
			if MatchGlob(rel, pattern) {
				matches = append(matches, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
