package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/imdario/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config represents a generation run over one schema document
type Config struct {
	Spec string `yaml:"spec"`
	// Defaults fill the unset fields of every target
	Defaults Target   `yaml:"defaults"`
	Targets  []Target `yaml:"targets"`
}

// Target represents one generated file
type Target struct {
	Language string `yaml:"language"`
	Output   string `yaml:"output"`
	// Template replaces the language's embedded template
	Template string `yaml:"template"`
	// Package names the generated package for languages that have one
	Package string `yaml:"package"`
	// Strict fails the target when a property type cannot be resolved
	Strict bool `yaml:"strict"`
	// PreCommand is an optional command to run before the file is written.
	// Uses Docker Compose array format: ["mkdir", "-p", "gen"]
	// The command will be executed in the output directory.
	PreCommand []string `yaml:"preCommand"`
	// PostCommand is an optional command to run after the file is written.
	// Uses Docker Compose array format: ["rustfmt", "types.rs"]
	// The command will be executed in the output directory.
	PostCommand []string `yaml:"postCommand"`
}

// GetPreCommand returns the pre-generation command to execute.
func (t *Target) GetPreCommand() []string {
	return t.PreCommand
}

// GetPostCommand returns the post-generation command to execute.
func (t *Target) GetPostCommand() []string {
	return t.PostCommand
}

// Select returns the targets whose language matches one of languages, or all
// targets when languages is empty. Languages compare case-insensitively.
func (c *Config) Select(languages ...string) []Target {
	return c.SelectBy(strings.ToLower, languages...)
}

// SelectBy is Select with names compared after canonical, which lets callers
// fold language aliases into one name
func (c *Config) SelectBy(canonical func(string) string, languages ...string) []Target {
	if len(languages) == 0 {
		return c.Targets
	}
	wanted := make(map[string]struct{}, len(languages))
	for _, l := range languages {
		wanted[canonical(l)] = struct{}{}
	}
	var out []Target
	for _, t := range c.Targets {
		if _, ok := wanted[canonical(t.Language)]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Load loads configuration from a YAML file on the OS filesystem
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs loads configuration from a YAML file on fs. Relative spec, output
// and template paths are resolved against the config file's directory.
func LoadFs(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(path)
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	cfg.resolvePaths(base)
	return cfg, nil
}

// Parse decodes and validates configuration, applying defaults to every target
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Spec == "" {
		return nil, errors.New("config.spec is required")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("config.targets must list at least one target")
	}

	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if err := mergo.Merge(t, cfg.Defaults); err != nil {
			return nil, fmt.Errorf("targets[%d]: failed to apply defaults: %w", i, err)
		}
		if t.Language == "" || t.Output == "" {
			return nil, fmt.Errorf("targets[%d] missing required fields (language, output)", i)
		}
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(base string) {
	c.Spec = absPath(base, c.Spec)
	for i := range c.Targets {
		t := &c.Targets[i]
		t.Output = absPath(base, t.Output)
		if t.Template != "" {
			t.Template = absPath(base, t.Template)
		}
	}
}

func absPath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
