package cocoapods

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lockfile names, in lookup order.
const (
	PodfileLock  = "Podfile.lock"
	ManifestLock = "Pods/Manifest.lock"
)

// PodEntry is one resolved pod from the PODS section.
//
// Fields:
//   - Name: Resolved name, possibly a subspec ("Firebase/Core")
//   - Version: Resolved version
//   - Dependencies: Requirements listed under the entry, version constraints stripped
type PodEntry struct {
	Name         string
	Version      string
	Dependencies []string
}

// RootName returns the name of the root spec.
func (e PodEntry) RootName() string {
	return rootName(e.Name)
}

// ExternalSource describes where a non-repo pod comes from.
type ExternalSource struct {
	// Path is set for development pods (":path:").
	Path string

	// Podspec is set for pods declared with ":podspec:".
	Podspec string
}

// IsLocal reports whether the pod is a development pod.
func (s ExternalSource) IsLocal() bool {
	return s.Path != ""
}

// Lockfile holds the parts of Podfile.lock needed to enumerate pods.
type Lockfile struct {
	// Pods are the resolved entries in file order.
	Pods []PodEntry

	// External maps root pod names to their external source.
	External map[string]ExternalSource

	// Version is the CocoaPods version that wrote the file.
	Version string
}

type rawLockfile struct {
	Pods     []interface{}                `yaml:"PODS"`
	External map[string]map[string]string `yaml:"EXTERNAL SOURCES"`
	Version  string                       `yaml:"COCOAPODS"`
}

// entryPattern matches "Name (1.2.3)" and "Name (~> 1.2)".
var entryPattern = regexp.MustCompile(`^\s*(\S+)(?:\s+\((.*)\))?\s*$`)

// ParseLockfile decodes Podfile.lock content.
//
// PODS entries are either plain strings or single-key mappings whose value
// lists the entry's own requirements.
//
// Parameters:
//   - content: Raw lockfile bytes
//
// Returns:
//   - *Lockfile: Parsed lockfile
//   - error: Returns error if the YAML is invalid or an entry is unrecognised
func ParseLockfile(content []byte) (*Lockfile, error) {
	var raw rawLockfile
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("invalid lockfile YAML: %w", err)
	}

	lf := &Lockfile{
		External: make(map[string]ExternalSource, len(raw.External)),
		Version:  raw.Version,
	}

	for _, item := range raw.Pods {
		entry, err := parsePodItem(item)
		if err != nil {
			return nil, err
		}
		lf.Pods = append(lf.Pods, entry)
	}

	for name, opts := range raw.External {
		lf.External[name] = ExternalSource{
			Path:    opts[":path"],
			Podspec: opts[":podspec"],
		}
	}

	return lf, nil
}

func parsePodItem(item interface{}) (PodEntry, error) {
	switch v := item.(type) {
	case string:
		name, version := splitEntry(v)
		if name == "" {
			return PodEntry{}, fmt.Errorf("invalid PODS entry %q", v)
		}
		return PodEntry{Name: name, Version: version}, nil
	case map[string]interface{}:
		if len(v) != 1 {
			return PodEntry{}, fmt.Errorf("invalid PODS entry with %d keys", len(v))
		}
		var entry PodEntry
		for key, deps := range v {
			entry.Name, entry.Version = splitEntry(key)
			list, _ := deps.([]interface{})
			for _, d := range list {
				if s, ok := d.(string); ok {
					depName, _ := splitEntry(s)
					entry.Dependencies = append(entry.Dependencies, depName)
				}
			}
		}
		if entry.Name == "" {
			return PodEntry{}, fmt.Errorf("invalid PODS entry %v", v)
		}
		return entry, nil
	default:
		return PodEntry{}, fmt.Errorf("invalid PODS entry of type %T", item)
	}
}

// splitEntry splits "Name (version)" into its parts.
func splitEntry(s string) (string, string) {
	m := entryPattern.FindStringSubmatch(s)
	if m == nil {
		return "", ""
	}
	return m[1], strings.TrimSpace(m[2])
}

// ReadLockfile loads the project's lockfile.
//
// Podfile.lock is preferred; Pods/Manifest.lock is used when the project
// only has an installed sandbox.
//
// Parameters:
//   - projectDir: Directory containing the Podfile
//
// Returns:
//   - string: The lockfile path that was read
//   - *Lockfile: Parsed lockfile
//   - error: Returns error if neither file exists or parsing fails
func ReadLockfile(projectDir string) (string, *Lockfile, error) {
	var lastErr error
	for _, name := range []string{PodfileLock, ManifestLock} {
		path := filepath.Join(projectDir, filepath.FromSlash(name))
		content, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		lf, err := ParseLockfile(content)
		if err != nil {
			return path, nil, fmt.Errorf("%s: %w", path, err)
		}
		return path, lf, nil
	}
	return "", nil, fmt.Errorf("no %s found in %s: %w", PodfileLock, projectDir, lastErr)
}

func rootName(name string) string {
	if i := strings.Index(name, "/"); i >= 0 {
		return name[:i]
	}
	return name
}
