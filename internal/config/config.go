// Package config provides reading and writing of roman configuration.
// Supports both global (~/.roman/config.yaml) and local (.roman/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: goes back to wherever the config was read from.
//
// Environment variables (see env.go) override file values; command-line
// flags override both and are applied by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/roman/internal/roman"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.roman/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .roman/config.yaml
	ScopeLocal
)

// Validator selects the engine used when no flag is given.
type Validator struct {
	Engine string `yaml:"engine,omitempty"`
}

// Log controls the conversion audit log.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// History holds history command defaults.
type History struct {
	Limit *int `yaml:"limit,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultHistoryLimit = 20
	MinHistoryLimit     = 1
	MaxHistoryLimit     = 1000
)

// Config contains configuration for roman.
type Config struct {
	Validator Validator `yaml:"validator,omitempty"`
	Log       Log       `yaml:"log,omitempty"`
	History   History   `yaml:"history,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
	env   Env
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if _, err := roman.ParseEngine(c.Validator.Engine); err != nil {
		return fmt.Errorf("%w: validator.engine: %w", ErrInvalidValue, err)
	}
	if c.History.Limit != nil {
		v := *c.History.Limit
		if v < MinHistoryLimit || v > MaxHistoryLimit {
			return fmt.Errorf("%w: history.limit must be between %d and %d, got %d",
				ErrInvalidValue, MinHistoryLimit, MaxHistoryLimit, v)
		}
	}
	return nil
}

// Engine returns the validator engine: ROMAN_ENGINE, then the file, then
// the state machine.
func (c *Config) Engine() roman.Engine {
	if c.env.Engine != "" {
		if e, err := roman.ParseEngine(c.env.Engine); err == nil {
			return e
		}
	}
	e, err := roman.ParseEngine(c.Validator.Engine)
	if err != nil {
		return roman.EngineState
	}
	return e
}

// LogEnabled reports whether conversions are written to the audit log
// (defaults to true). ROMAN_NO_LOG disables it regardless of the file.
func (c *Config) LogEnabled() bool {
	if c.env.NoLog {
		return false
	}
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// HistoryLimit returns how many entries history shows (defaults to 20).
func (c *Config) HistoryLimit() int {
	if c.History.Limit == nil {
		return DefaultHistoryLimit
	}
	return *c.History.Limit
}

// LocalPath returns the path to the local (directory) config file.
func LocalPath() string {
	return filepath.Join(".roman", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file.
func GlobalPath() string {
	home := HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	e, err := LoadEnv()
	if err != nil {
		return nil, err
	}

	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope, env: e}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope, env: e}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope
	cfg.env = e

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
