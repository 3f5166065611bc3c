package cocoapods

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/podquery/pkg/record"
	"github.com/ajxudir/podquery/pkg/source"
)

// Podspec is the subset of a JSON podspec used to describe a pod.
//
// Key order from the JSON document is kept for authors, platforms and
// dependencies so records list them the way the podspec does.
type Podspec struct {
	Name          string
	Version       string
	Authors       []source.Author
	License       string
	Summary       string
	Description   string
	Homepage      string
	SwiftVersions []string
	Platforms     []record.Platform
	Dependencies  []string
	SourceFiles   []string
	Subspecs      []*Podspec
}

// ParsePodspec decodes a podspec JSON document.
//
// Parameters:
//   - content: The .podspec.json bytes
//
// Returns:
//   - *Podspec: Parsed podspec
//   - error: Returns error if the content is not a JSON object
func ParsePodspec(content []byte) (*Podspec, error) {
	data := orderedmap.New()
	if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("invalid podspec JSON: %w", err)
	}
	return podspecFromMap(data), nil
}

func podspecFromMap(data *orderedmap.OrderedMap) *Podspec {
	spec := &Podspec{
		Name:        stringField(data, "name"),
		Version:     stringField(data, "version"),
		Summary:     stringField(data, "summary"),
		Description: stringField(data, "description"),
		Homepage:    stringField(data, "homepage"),
	}

	if v, ok := data.Get("authors"); ok {
		spec.Authors = parseAuthors(v)
	} else if v, ok := data.Get("author"); ok {
		spec.Authors = parseAuthors(v)
	}

	if v, ok := data.Get("license"); ok {
		spec.License = parseLicense(v)
	}

	if v, ok := data.Get("swift_versions"); ok {
		spec.SwiftVersions = stringList(v)
	}
	if len(spec.SwiftVersions) == 0 {
		if v := stringField(data, "swift_version"); v != "" {
			spec.SwiftVersions = []string{v}
		}
	}

	if m := mapField(data, "platforms"); m != nil {
		for _, name := range m.Keys() {
			v, _ := m.Get(name)
			version, _ := v.(string)
			spec.Platforms = append(spec.Platforms, record.Platform{Name: name, Version: version})
		}
	} else if v := stringField(data, "platform"); v != "" {
		spec.Platforms = []record.Platform{{Name: v}}
	}

	if m := mapField(data, "dependencies"); m != nil {
		spec.Dependencies = m.Keys()
	}

	if v, ok := data.Get("source_files"); ok {
		spec.SourceFiles = stringList(v)
	}

	if v, ok := data.Get("subspecs"); ok {
		list, _ := v.([]interface{})
		for _, item := range list {
			if m := asMap(item); m != nil {
				spec.Subspecs = append(spec.Subspecs, podspecFromMap(m))
			}
		}
	}

	return spec
}

// Subspec finds a nested subspec by its path below the root ("Core" or
// "Core/Utils"). It returns nil when no such subspec exists.
func (s *Podspec) Subspec(path string) *Podspec {
	current := s
	for _, part := range strings.Split(path, "/") {
		var next *Podspec
		for _, sub := range current.Subspecs {
			if sub.Name == part {
				next = sub
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// parseAuthors accepts the three podspec author forms: a single name, a
// list of names, or a name to email mapping.
func parseAuthors(v interface{}) []source.Author {
	switch a := v.(type) {
	case string:
		return []source.Author{{Name: a}}
	case []interface{}:
		var authors []source.Author
		for _, item := range a {
			if s, ok := item.(string); ok {
				authors = append(authors, source.Author{Name: s})
			}
		}
		return authors
	}

	m := asMap(v)
	if m == nil {
		return nil
	}
	var authors []source.Author
	for _, name := range m.Keys() {
		email, _ := m.Get(name)
		s, _ := email.(string)
		authors = append(authors, source.Author{Name: name, Email: s})
	}
	return authors
}

// parseLicense accepts either a license name or a {"type": ...} object.
func parseLicense(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if m := asMap(v); m != nil {
		return stringField(m, "type")
	}
	return ""
}

func asMap(v interface{}) *orderedmap.OrderedMap {
	switch m := v.(type) {
	case orderedmap.OrderedMap:
		return &m
	case *orderedmap.OrderedMap:
		return m
	}
	return nil
}

func mapField(data *orderedmap.OrderedMap, key string) *orderedmap.OrderedMap {
	v, ok := data.Get(key)
	if !ok {
		return nil
	}
	return asMap(v)
}

func stringField(data *orderedmap.OrderedMap, key string) string {
	v, ok := data.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// stringList accepts a string or a list of strings.
func stringList(v interface{}) []string {
	switch s := v.(type) {
	case string:
		if s == "" {
			return nil
		}
		return []string{s}
	case []interface{}:
		var out []string
		for _, item := range s {
			if str, ok := item.(string); ok && str != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}
