// Package config holds the run configuration: target, seed sources,
// vocabulary sources, fuzzing and probing knobs. Profiles can be
// loaded from YAML and overridden by flags.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pathoracle/pathoracle/pkg/defaults"
)

// Config is the complete run configuration.
type Config struct {
	Target string `yaml:"target"`

	SeedFile string   `yaml:"seed_file"`
	Seeds    []string `yaml:"seeds"`

	WordFile string   `yaml:"word_file"`
	Words    []string `yaml:"words"`

	Fuzz           bool   `yaml:"fuzz"`
	FuzzCommand    string `yaml:"fuzz_command"`
	FuzzIterations int    `yaml:"fuzz_iterations"`

	Throttle     time.Duration `yaml:"throttle"`
	StaticSuffix string        `yaml:"static_suffix"`
	Threshold    float64       `yaml:"threshold"`

	Timeout    time.Duration `yaml:"timeout"`
	Proxy      string        `yaml:"proxy"`
	SkipVerify bool          `yaml:"skip_verify"`

	OutputFile string `yaml:"output_file"`
	DryRun     bool   `yaml:"dry_run"`
	Silent     bool   `yaml:"silent"`
	NoColor    bool   `yaml:"no_color"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns a Config populated with the standard knobs.
func Default() *Config {
	return &Config{
		FuzzCommand:    defaults.FuzzCommand,
		FuzzIterations: defaults.MutationIterations,
		Throttle:       defaults.Throttle,
		Threshold:      defaults.ScoreThreshold,
		Timeout:        defaults.RequestTimeout,
		SkipVerify:     true,
	}
}

// LoadProfile reads a YAML profile over the given base configuration.
func LoadProfile(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read profile %s: %w", path, err)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse profile %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration before a run. Dry runs may omit
// the target; live runs may not.
func (c *Config) Validate() error {
	if !c.DryRun {
		if c.Target == "" {
			return fmt.Errorf("%w: target URL", ErrMissingRequired)
		}
		u, err := url.Parse(c.Target)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: target %q must be an absolute http(s) URL", ErrInvalidConfig, c.Target)
		}
	}
	if c.SeedFile == "" && len(c.Seeds) == 0 {
		return fmt.Errorf("%w: seed endpoints (file or inline)", ErrMissingRequired)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: threshold %v outside [0,1]", ErrInvalidConfig, c.Threshold)
	}
	if c.Throttle < 0 {
		return fmt.Errorf("%w: throttle must not be negative", ErrInvalidConfig)
	}
	if c.FuzzIterations < 0 {
		return fmt.Errorf("%w: fuzz iterations must not be negative", ErrInvalidConfig)
	}
	if c.Fuzz && strings.TrimSpace(c.FuzzCommand) == "" {
		return fmt.Errorf("%w: fuzz command", ErrMissingRequired)
	}
	return nil
}
