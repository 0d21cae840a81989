// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command, where settings are addressed by
// dotted keys (e.g., "validator.engine").

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/roman/internal/roman"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"validator.engine", "log.enabled", "history.limit"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "validator.engine":
		return c.Engine().String(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	case "history.limit":
		return strconv.Itoa(c.HistoryLimit()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "validator.engine":
		e, err := roman.ParseEngine(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		c.Validator.Engine = string(e)
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	case "history.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinHistoryLimit || n > MaxHistoryLimit {
			return fmt.Errorf("%w: history.limit must be an integer between %d and %d",
				ErrInvalidValue, MinHistoryLimit, MaxHistoryLimit)
		}
		c.History.Limit = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"validator.engine": c.Engine().String(),
		"log.enabled":      strconv.FormatBool(c.LogEnabled()),
		"history.limit":    strconv.Itoa(c.HistoryLimit()),
	}
}

// IsSet returns true if the key has an explicit value in the file.
func (c *Config) IsSet(key string) bool {
	switch key {
	case "validator.engine":
		return c.Validator.Engine != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	case "history.limit":
		return c.History.Limit != nil
	default:
		return false
	}
}
