package cocoapods

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/source"
	"github.com/ajxudir/podquery/pkg/verbose"
)

// LocalPodspecsDir is where CocoaPods stores podspecs of externally sourced pods.
const LocalPodspecsDir = "Pods/Local Podspecs"

// Sandbox reads a CocoaPods project directory and its installed Pods sandbox.
//
// Fields:
//   - ProjectDir: Directory containing the Podfile and Podfile.lock
//   - SpecRepos: Spec repo checkouts searched for non-local podspecs
type Sandbox struct {
	ProjectDir string
	SpecRepos  []string
}

// NewSandbox creates a Sandbox. When specRepos is empty the repos CocoaPods
// maintains in the user's home directory are searched.
//
// Parameters:
//   - projectDir: Project directory; "" means the working directory
//   - specRepos: Spec repo directories, in priority order
//
// Returns:
//   - *Sandbox: The backend
func NewSandbox(projectDir string, specRepos []string) *Sandbox {
	if projectDir == "" {
		projectDir = "."
	}
	if abs, err := filepath.Abs(projectDir); err == nil {
		projectDir = abs
	}
	if len(specRepos) == 0 {
		specRepos = DefaultSpecRepos()
	}
	return &Sandbox{ProjectDir: projectDir, SpecRepos: specRepos}
}

// PodsDir returns the sandbox root.
func (s *Sandbox) PodsDir() string {
	return filepath.Join(s.ProjectDir, "Pods")
}

// Targets returns one target per lockfile PODS entry, subspecs included.
//
// Returns:
//   - []source.Target: Targets in lockfile order
//   - error: *errors.BackendError when the lockfile or a podspec cannot be read
func (s *Sandbox) Targets() ([]source.Target, error) {
	verbose.Info("Loading targets...")

	lockPath, lf, err := ReadLockfile(s.ProjectDir)
	if err != nil {
		return nil, errors.NewBackendError("read lockfile", err)
	}
	verbose.Debug("lockfile loaded", "path", lockPath, "pods", len(lf.Pods), "cocoapods", lf.Version)

	specs := make(map[string]*Podspec)
	targets := make([]source.Target, 0, len(lf.Pods))
	for _, entry := range lf.Pods {
		root := entry.RootName()
		ext := lf.External[root]

		spec, specPath, local, err := s.podspecFor(root, entry.Version, ext, specs)
		if err != nil {
			return nil, errors.NewBackendError("read podspec", err)
		}

		target := source.Target{
			Name:     entry.Name,
			RootName: root,
			Version:  entry.Version,
			Local:    ext.IsLocal(),
		}
		if spec == nil {
			verbose.Debug("no podspec found", "pod", root, "version", entry.Version)
			target.Dependencies = entry.Dependencies
			targets = append(targets, target)
			continue
		}

		if err := s.describe(&target, entry, spec, ext); err != nil {
			return nil, errors.NewBackendError("expand source files", err)
		}
		if local {
			target.PodspecPath = specPath
		}
		targets = append(targets, target)
	}

	return targets, nil
}

// describe fills the podspec-derived fields of a target.
func (s *Sandbox) describe(t *source.Target, entry PodEntry, spec *Podspec, ext ExternalSource) error {
	if t.Version == "" {
		t.Version = spec.Version
	}
	t.HasSpec = true
	t.RootDir = s.rootDir(t.RootName, ext)
	t.Authors = spec.Authors
	t.License = spec.License
	t.Summary = spec.Summary
	t.Description = spec.Description
	t.Homepage = spec.Homepage
	t.SwiftVersions = spec.SwiftVersions
	t.Platforms = spec.Platforms
	t.Dependencies = spec.Dependencies
	t.ReadmePath = findReadme(t.RootDir)

	files, err := expandSourceFiles(t.RootDir, spec.SourceFiles)
	if err != nil {
		return err
	}
	t.SourceFiles = files

	swift := hasSwift(files) || len(spec.SwiftVersions) > 0
	if !swift {
		if sub := entrySubspec(spec, entry.Name); sub != nil {
			subFiles, err := expandSourceFiles(t.RootDir, sub.SourceFiles)
			if err != nil {
				return err
			}
			swift = hasSwift(subFiles)
		}
	}
	t.UsesSwift = swift
	return nil
}

// rootDir returns the directory holding a pod's files.
func (s *Sandbox) rootDir(root string, ext ExternalSource) string {
	if ext.Path != "" {
		if filepath.IsAbs(ext.Path) {
			return filepath.Clean(ext.Path)
		}
		return filepath.Join(s.ProjectDir, ext.Path)
	}
	return filepath.Join(s.PodsDir(), root)
}

// podspecFor locates and parses the podspec for a root pod, caching by name.
// local reports whether the podspec came from the project rather than a spec repo.
func (s *Sandbox) podspecFor(root, version string, ext ExternalSource, cache map[string]*Podspec) (*Podspec, string, bool, error) {
	path, local := s.locatePodspec(root, version, ext)
	if path == "" {
		return nil, "", false, nil
	}
	if spec, ok := cache[path]; ok {
		return spec, path, local, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", false, err
	}
	spec, err := ParsePodspec(content)
	if err != nil {
		return nil, "", false, fmt.Errorf("%s: %w", path, err)
	}
	cache[path] = spec
	return spec, path, local, nil
}

func (s *Sandbox) locatePodspec(root, version string, ext ExternalSource) (string, bool) {
	localCopy := filepath.Join(s.ProjectDir, filepath.FromSlash(LocalPodspecsDir), root+".podspec.json")
	if isFile(localCopy) {
		return localCopy, true
	}
	if found := s.declaredPodspec(root, ext); found != "" {
		return found, true
	}
	if ext.Path != "" {
		inPod := filepath.Join(s.rootDir(root, ext), root+".podspec.json")
		if isFile(inPod) {
			return inPod, true
		}
	}
	if found := FindInSpecRepos(s.SpecRepos, root, version); found != "" {
		return found, false
	}
	return "", false
}

// declaredPodspec resolves a ":podspec:" source against the project
// directory. It may name the file or the directory holding it. Remote
// and non-JSON podspecs are left to the spec repo search.
func (s *Sandbox) declaredPodspec(root string, ext ExternalSource) string {
	if ext.Podspec == "" || strings.Contains(ext.Podspec, "://") {
		return ""
	}
	path := ext.Podspec
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.ProjectDir, path)
	}
	if isDir(path) {
		path = filepath.Join(path, root+".podspec.json")
	}
	if !strings.HasSuffix(path, ".json") || !isFile(path) {
		return ""
	}
	return path
}

// entrySubspec returns the subspec a PODS entry names, or nil for a root entry.
func entrySubspec(spec *Podspec, name string) *Podspec {
	i := strings.Index(name, "/")
	if i < 0 {
		return nil
	}
	return spec.Subspec(name[i+1:])
}

var _ source.Backend = (*Sandbox)(nil)
