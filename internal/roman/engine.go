package roman

import (
	"fmt"
	"slices"
	"strings"
)

// Engine selects the validator a conversion uses.
type Engine string

const (
	// EngineState is the single-pass state machine (default).
	EngineState Engine = "state"
	// EnginePattern matches the canonical regular grammar.
	EnginePattern Engine = "pattern"
)

// Engines lists the valid engine names.
func Engines() []string {
	return []string{string(EngineState), string(EnginePattern)}
}

// ParseEngine resolves a case-insensitive engine name. Empty means EngineState.
func ParseEngine(name string) (Engine, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return EngineState, nil
	}
	if !slices.Contains(Engines(), n) {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownEngine, name, strings.Join(Engines(), ", "))
	}
	return Engine(n), nil
}

// Validate runs the engine's validator on an upper-case candidate. The zero
// Engine behaves as EngineState.
func (e Engine) Validate(candidate string) bool {
	if e == EnginePattern {
		return MatchesPattern(candidate)
	}
	return IsValid(candidate)
}

func (e Engine) String() string {
	if e == "" {
		return string(EngineState)
	}
	return string(e)
}
