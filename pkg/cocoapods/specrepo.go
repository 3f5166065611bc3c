package cocoapods

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
)

// shardPrefixLengths mirrors the trunk layout Specs/1/2/3/<Name>.
var shardPrefixLengths = []int{1, 1, 1}

// ShardPath returns the sharded directory components for a pod name.
//
// Parameters:
//   - name: Root pod name
//
// Returns:
//   - []string: One directory per prefix, taken from the name's MD5 hex digest
//
// Example:
//
//	cocoapods.ShardPath("Alamofire") // []string{"d", "1", "f"}
func ShardPath(name string) []string {
	sum := md5.Sum([]byte(name))
	digest := hex.EncodeToString(sum[:])

	parts := make([]string, 0, len(shardPrefixLengths))
	offset := 0
	for _, n := range shardPrefixLengths {
		parts = append(parts, digest[offset:offset+n])
		offset += n
	}
	return parts
}

// FindInSpecRepos looks for <name>/<version>/<name>.podspec.json in each repo.
//
// Each repo is tried with the sharded layout first, then the flat Specs/
// layout, then a layout without the Specs/ directory.
//
// Parameters:
//   - repos: Spec repo checkouts, in priority order
//   - name: Root pod name
//   - version: Resolved version
//
// Returns:
//   - string: Path of the first podspec found, or "" if none exists
func FindInSpecRepos(repos []string, name, version string) string {
	file := name + ".podspec.json"
	for _, repo := range repos {
		candidates := []string{
			filepath.Join(append(append([]string{repo, "Specs"}, ShardPath(name)...), name, version, file)...),
			filepath.Join(repo, "Specs", name, version, file),
			filepath.Join(repo, name, version, file),
		}
		for _, c := range candidates {
			if isFile(c) {
				return c
			}
		}
	}
	return ""
}

// DefaultSpecRepos lists the spec repo checkouts CocoaPods maintains.
//
// The repos directory is $CP_REPOS_DIR when set, ~/.cocoapods/repos
// otherwise. Each subdirectory is a repo; they are returned sorted.
//
// Returns:
//   - []string: Absolute repo directories; nil when none exist
func DefaultSpecRepos() []string {
	dir := os.Getenv("CP_REPOS_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, ".cocoapods", "repos")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var repos []string
	for _, e := range entries {
		if e.IsDir() {
			repos = append(repos, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(repos)
	return repos
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
