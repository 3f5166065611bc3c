package config

// Config holds the persistent defaults for a pod-query run.
//
// Every field can be overridden by the matching command-line flag. Relative
// paths are resolved against the directory of the file they were read from.
type Config struct {
	// CaseInsensitive makes every string criterion ignore case by default.
	CaseInsensitive bool `yaml:"case_insensitive,omitempty" toml:"case_insensitive"`

	// Substring makes every string criterion match by containment by default.
	Substring bool `yaml:"substring,omitempty" toml:"substring"`

	// Cache is the default snapshot path. Empty means query the project.
	Cache string `yaml:"cache,omitempty" toml:"cache"`

	// ProjectDirectory is the CocoaPods project root. Empty means WorkingDir.
	ProjectDirectory string `yaml:"project_directory,omitempty" toml:"project_directory"`

	// SpecRepos lists spec repository roots searched for podspecs.
	SpecRepos []string `yaml:"spec_repos,omitempty" toml:"spec_repos"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty" toml:"verbose"`

	// WorkingDir is the directory the run started in. It is never persisted.
	WorkingDir string `yaml:"-" toml:"-"`

	// Path is the file the config was read from, or "" for defaults.
	Path string `yaml:"-" toml:"-"`
}

// ResolvedProjectDirectory returns the project directory to query.
//
// Returns:
//   - string: ProjectDirectory if set, otherwise WorkingDir, otherwise "."
func (c *Config) ResolvedProjectDirectory() string {
	if c.ProjectDirectory != "" {
		return c.ProjectDirectory
	}
	if c.WorkingDir != "" {
		return c.WorkingDir
	}
	return "."
}
