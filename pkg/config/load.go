// Package config loads pod-query defaults from a YAML or TOML file.
//
// Lookup order is an explicit --config path, then .pod-query.yml,
// .pod-query.yaml or .pod-query.toml in the working directory, then the
// built-in defaults embedded from default.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/verbose"
)

// DefaultMaxConfigFileSize caps the size of a config file read from disk.
const DefaultMaxConfigFileSize int64 = 1 << 20

// LocalConfigNames are the file names searched in the working directory, in order.
var LocalConfigNames = []string{".pod-query.yml", ".pod-query.yaml", ".pod-query.toml"}

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file and any
// failure is returned. Otherwise the first LocalConfigNames entry present in
// workDir is loaded. If none exists the built-in defaults are used.
//
// Parameters:
//   - configPath: path to the config file, or empty to search workDir
//   - workDir: working directory for the run
//
// Returns:
//   - *Config: the loaded configuration with relative paths resolved
//   - error: an ExitError with ExitConfigError when loading or validation fails
func LoadConfig(configPath, workDir string) (*Config, error) {
	if configPath == "" {
		configPath = findLocalConfig(workDir)
	}

	var cfg *Config
	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, errors.NewExitError(errors.ExitConfigError,
				fmt.Errorf("failed to load config %s: %w", configPath, err))
		}
		cfg = loaded
		cfg.Path = configPath
		cfg.resolvePaths(filepath.Dir(configPath))
	} else {
		cfg = loadDefaultConfig()
	}
	verbose.ConfigLoaded(cfg.Path)

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else {
		cfg.WorkingDir = "."
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findLocalConfig returns the first config file present in dir, or "".
func findLocalConfig(dir string) string {
	if dir == "" {
		dir = "."
	}
	for _, name := range LocalConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			verbose.Infof("Found local config: %s", path)
			return path
		}
	}
	return ""
}

// loadConfigFile reads and strictly decodes one config file.
func loadConfigFile(path string) (*Config, error) {
	return loadConfigFileWithLimit(path, DefaultMaxConfigFileSize)
}

// loadConfigFileWithLimit loads a config file after checking its size.
//
// Parameters:
//   - path: path to the config file
//   - maxSize: maximum allowed file size in bytes
//
// Returns:
//   - *Config: the decoded configuration
//   - error: error if the file is too large, unreadable, or invalid
func loadConfigFileWithLimit(path string, maxSize int64) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return loadConfigData(data, FormatForPath(path))
}

// loadConfigData decodes config bytes in the given format.
func loadConfigData(data []byte, format Format) (*Config, error) {
	switch format {
	case FormatTOML:
		return DecodeTOML(data)
	default:
		return DecodeYAML(data)
	}
}

// resolvePaths makes relative paths absolute against base and expands a
// leading "~/" to the user's home directory.
func (c *Config) resolvePaths(base string) {
	c.Cache = resolvePath(base, c.Cache)
	c.ProjectDirectory = resolvePath(base, c.ProjectDirectory)
	for i, repo := range c.SpecRepos {
		c.SpecRepos[i] = resolvePath(base, repo)
	}
}

func resolvePath(base, path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
