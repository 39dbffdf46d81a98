package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/reportkit/policy"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "reportkit.yaml", "logging:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Processed", cfg.Output.Dir)
	assert.Equal(t, "_modified", cfg.Output.Suffix)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("REPORTKIT_OUT", "/srv/out")
	path := writeFile(t, t.TempDir(), "reportkit.yaml", `
env: ${REPORTKIT_ENV:-prod}
output:
  dir: ${REPORTKIT_OUT}
metrics:
  textfile: ${REPORTKIT_TEXTFILE:-}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/srv/out", cfg.Output.Dir)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad env", func(c *Config) { c.Env = "staging" }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"suffix with separator", func(c *Config) { c.Output.Suffix = "/x" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
	c := Default()
	assert.NoError(t, c.Validate())
}

func TestLoadPolicy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policy.yaml", "ranking:\n  from_label: all-priors\n")
	path := writeFile(t, dir, "reportkit.yaml", `
policy_file: policy.yaml
policy:
  variant: links-first
  ranking:
    improvement: previous
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "policy.yaml"), cfg.PolicyFile)

	p, err := cfg.LoadPolicy()
	require.NoError(t, err)
	assert.Equal(t, policy.LinksFirst, p.Variant)
	assert.EqualValues(t, "previous", p.Ranking.Improvement)
	assert.EqualValues(t, "all-priors", p.Ranking.FromLabel)
	assert.Equal(t, policy.Default().Markers, p.Markers)
}

func TestLoadPolicy_Default(t *testing.T) {
	c := Default()
	p, err := c.LoadPolicy()
	require.NoError(t, err)
	assert.Equal(t, policy.Default(), p)
}

func TestLoadPolicy_Invalid(t *testing.T) {
	cfg, err := Parse([]byte("policy:\n  unknown_key: 1\n"), ".")
	require.NoError(t, err)

	_, err = cfg.LoadPolicy()
	assert.ErrorIs(t, err, policy.ErrInvalidPolicy)
}

func TestOutputPath(t *testing.T) {
	c := Default()
	in := filepath.Join("reports", "july.docx")
	assert.Equal(t, filepath.Join("reports", "Processed", "july_modified.docx"), c.OutputPath(in))

	c.Output.Dir = filepath.Join(string(filepath.Separator), "out")
	assert.Equal(t, filepath.Join(string(filepath.Separator), "out", "july_modified.docx"), c.OutputPath(in))
}
