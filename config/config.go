// Package config loads the reportkit YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/reportkit/policy"
)

// Config holds the reportkit configuration.
type Config struct {
	Env     string        `yaml:"env"` // local, dev, prod
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
	Watch   WatchConfig   `yaml:"watch"`
	// Policy overrides the built-in template policy. Fields left out keep
	// their defaults.
	Policy yaml.Node `yaml:"policy"`
	// PolicyFile points at a separate policy file; it is read after Policy.
	PolicyFile string `yaml:"policy_file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// OutputConfig controls where processed documents are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // relative to the input folder unless absolute
	Suffix string `yaml:"suffix"` // appended to the file name before .docx
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node exporter textfile path; empty disables
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

// Load reads configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(expandEnvVars(data), filepath.Dir(path))
}

// Parse decodes configuration data. Relative policy files resolve against
// dir.
func Parse(data []byte, dir string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.PolicyFile != "" && !filepath.IsAbs(cfg.PolicyFile) {
		cfg.PolicyFile = filepath.Join(dir, cfg.PolicyFile)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "Processed"
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = "_modified"
	}
	if c.Watch.DebounceMs <= 0 {
		c.Watch.DebounceMs = 500
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be local, dev or prod, got %q", c.Env)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return fmt.Errorf("output.suffix must not contain a path separator, got %q", c.Output.Suffix)
	}
	return nil
}

// LoadPolicy builds the template policy: the defaults, overlaid with the
// inline policy section, overlaid with the policy file.
func (c *Config) LoadPolicy() (policy.Policy, error) {
	p := policy.Default()

	if !c.Policy.IsZero() {
		data, err := yaml.Marshal(&c.Policy)
		if err != nil {
			return policy.Policy{}, fmt.Errorf("failed to read inline policy: %w", err)
		}
		if p, err = policy.ParseOver(p, data); err != nil {
			return policy.Policy{}, err
		}
	}

	if c.PolicyFile != "" {
		data, err := os.ReadFile(filepath.Clean(c.PolicyFile))
		if err != nil {
			return policy.Policy{}, fmt.Errorf("failed to read policy %s: %w", c.PolicyFile, err)
		}
		if p, err = policy.ParseOver(p, expandEnvVars(data)); err != nil {
			return policy.Policy{}, err
		}
	}
	return p, nil
}

// OutputPath returns where the processed copy of input is written.
func (c *Config) OutputPath(input string) string {
	dir := c.OutputDir(filepath.Dir(input))
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+c.Output.Suffix+".docx")
}

// OutputDir returns the output folder for documents found in inputDir.
func (c *Config) OutputDir(inputDir string) string {
	if filepath.IsAbs(c.Output.Dir) {
		return c.Output.Dir
	}
	return filepath.Join(inputDir, c.Output.Dir)
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
