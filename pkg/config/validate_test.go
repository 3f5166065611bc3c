package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/podquery/pkg/errors"
)

// TestFormatForPath tests extension-based syntax selection.
func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath(".pod-query.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("CONF.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath(".pod-query.yml"))
	assert.Equal(t, FormatYAML, FormatForPath("config"))
}

// TestDecodeYAML tests strict YAML decoding.
//
// It verifies:
//   - All known keys decode
//   - Empty documents give a zero Config
//   - Unknown keys produce a ValidationError naming the key
//   - Syntax errors are reported as such
func TestDecodeYAML(t *testing.T) {
	cfg, err := DecodeYAML([]byte(`
case_insensitive: true
substring: true
cache: pods.yaml.xz
project_directory: ios
spec_repos: [a, b]
verbose: true
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		CaseInsensitive:  true,
		Substring:        true,
		Cache:            "pods.yaml.xz",
		ProjectDirectory: "ios",
		SpecRepos:        []string{"a", "b"},
		Verbose:          true,
	}, cfg)

	cfg, err = DecodeYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = DecodeYAML([]byte("substrng: true\n"))
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "substrng", ve.Field)
	assert.Contains(t, ve.Expected, "substring")

	_, err = DecodeYAML([]byte("cache: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YAML syntax error")
}

// TestDecodeTOML tests TOML decoding and unknown key detection.
func TestDecodeTOML(t *testing.T) {
	cfg, err := DecodeTOML([]byte("substring = true\ncache = \"pods.json\"\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Substring)
	assert.Equal(t, "pods.json", cfg.Cache)

	_, err = DecodeTOML([]byte("verbos = true\n"))
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "verbos", ve.Field)

	_, err = DecodeTOML([]byte("cache = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOML syntax error")
}

// TestValidate tests value-level validation.
func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{SpecRepos: []string{"a"}}).Validate())

	err := (&Config{SpecRepos: []string{"a", " "}}).Validate()
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "spec_repos[1]", ve.Field)
	assert.Equal(t, "empty path", ve.Message)
}

// TestExtractUnknownField tests key extraction from yaml.v3 messages.
func TestExtractUnknownField(t *testing.T) {
	msg := "yaml: unmarshal errors:\n  line 1: field cach not found in type config.Config"
	assert.Equal(t, "cach", extractUnknownField(msg))
	assert.Equal(t, "", extractUnknownField("something else"))
}

// TestKnownKeys tests that the accepted keys are sorted.
func TestKnownKeys(t *testing.T) {
	assert.Equal(t, []string{"cache", "case_insensitive", "project_directory", "spec_repos", "substring", "verbose"}, KnownKeys())
}
