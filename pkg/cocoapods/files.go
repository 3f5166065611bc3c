package cocoapods

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ajxudir/podquery/pkg/utils"
)

// sourceExtensions are the files a directory entry in source_files expands to.
const sourceExtensions = "{h,hh,hpp,ipp,tpp,hxx,def,inl,inc,m,mm,i,c,cc,cxx,cpp,c++,swift}"

// expandSourceFiles resolves podspec source globs below root.
//
// A pattern naming a directory stands for the source files directly inside
// it. The result is sorted and free of duplicates.
func expandSourceFiles(root string, patterns []string) ([]string, error) {
	if root == "" || len(patterns) == 0 || !isDir(root) {
		return nil, nil
	}

	var globs []string
	for _, p := range patterns {
		for _, alt := range utils.ExpandBraces(p) {
			alt = strings.TrimSuffix(filepath.ToSlash(alt), "/")
			if alt != "" && !strings.ContainsAny(alt, "*?[") && isDir(filepath.Join(root, filepath.FromSlash(alt))) {
				alt = path.Join(alt, "*."+sourceExtensions)
			}
			globs = append(globs, alt)
		}
	}

	return utils.FindFilesByPatterns(root, globs)
}

// findReadme returns the first top-level file whose name starts with
// "readme", ignoring case, or "" when there is none.
func findReadme(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(strings.ToLower(e.Name()), "readme") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(root, names[0])
}

// hasSwift reports whether any path is a Swift source file.
func hasSwift(files []string) bool {
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".swift") {
			return true
		}
	}
	return false
}
