// env.go reads environment overrides with caarlos0/env.
//
// Kept apart from config.go so the file format and the environment surface
// can change independently. HomeDir parses only ROMAN_HOME so a bad value in
// another variable never hides the config location.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides.
type Env struct {
	Home   string `env:"ROMAN_HOME"`
	Engine string `env:"ROMAN_ENGINE"`
	NoLog  bool   `env:"ROMAN_NO_LOG"`
}

// LoadEnv parses the environment overrides.
func LoadEnv() (Env, error) {
	e, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

type homeEnv struct {
	Home string `env:"ROMAN_HOME"`
}

// HomeDir returns the directory holding global config and the audit log:
// ROMAN_HOME if set, otherwise ~/.roman. Returns "" if neither resolves.
func HomeDir() string {
	if h, err := env.ParseAs[homeEnv](); err == nil && h.Home != "" {
		return h.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roman")
}
