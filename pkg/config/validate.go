package config

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/verbose"
)

// Format names a config file syntax.
type Format string

const (
	// FormatYAML is the default config syntax.
	FormatYAML Format = "yaml"
	// FormatTOML is selected by a .toml extension.
	FormatTOML Format = "toml"
)

// FormatForPath returns FormatTOML for a .toml file and FormatYAML otherwise.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// DecodeYAML strictly decodes a YAML config.
//
// Unknown keys are rejected using KnownFields(true) so that typos such as
// "case_insensitve" surface instead of being ignored. An empty document
// yields a zero Config.
//
// Parameters:
//   - data: YAML configuration bytes
//
// Returns:
//   - *Config: the decoded configuration
//   - error: a ValidationError for unknown keys, or the YAML syntax error
func DecodeYAML(data []byte) (*Config, error) {
	verbose.Printf("Config validation: decoding YAML with strict field checking")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	cfg := &Config{}
	if err := decoder.Decode(cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		msg := err.Error()
		if strings.Contains(msg, "field") && strings.Contains(msg, "not found") {
			return nil, &errors.ValidationError{
				Field:    extractUnknownField(msg),
				Message:  "unknown field",
				Expected: strings.Join(KnownKeys(), ", "),
			}
		}
		return nil, fmt.Errorf("YAML syntax error: %w", err)
	}
	return cfg, nil
}

// DecodeTOML decodes a TOML config, rejecting keys that map to no field.
//
// Parameters:
//   - data: TOML configuration bytes
//
// Returns:
//   - *Config: the decoded configuration
//   - error: a ValidationError for unknown keys, or the TOML syntax error
func DecodeTOML(data []byte) (*Config, error) {
	verbose.Printf("Config validation: decoding TOML")

	cfg := &Config{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("TOML syntax error: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, &errors.ValidationError{
			Field:    undecoded[0].String(),
			Message:  "unknown field",
			Expected: strings.Join(KnownKeys(), ", "),
		}
	}
	return cfg, nil
}

// KnownKeys returns the config keys accepted in either syntax, sorted.
func KnownKeys() []string {
	keys := []string{"case_insensitive", "substring", "cache", "project_directory", "spec_repos", "verbose"}
	sort.Strings(keys)
	return keys
}

// Validate checks the loaded values for consistency.
//
// Returns:
//   - error: a ValidationError naming the first offending field, or nil
func (c *Config) Validate() error {
	for i, repo := range c.SpecRepos {
		if strings.TrimSpace(repo) == "" {
			verr := errors.NewConfigValidationError(fmt.Sprintf("spec_repos[%d]", i), "empty path")
			verr.Expected = "a directory containing a Specs folder"
			return verr
		}
	}
	return nil
}

// extractUnknownField pulls the key out of a yaml.v3 error such as
// "yaml: unmarshal errors:\n  line 2: field cach not found in type config.Config".
func extractUnknownField(msg string) string {
	const prefix = "field "
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return ""
	}
	rest := msg[idx+len(prefix):]
	if end := strings.Index(rest, " not found"); end >= 0 {
		return rest[:end]
	}
	return ""
}
