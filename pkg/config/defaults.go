package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

// loadDefaultConfig parses the embedded defaults, falling back to a zero
// Config if they cannot be decoded.
func loadDefaultConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), cfg); err != nil {
		return &Config{}
	}
	return cfg
}
