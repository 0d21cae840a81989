// context.go defines the Context interface for extension access to shared
// state resolved once per invocation.
//
// Separated from extension.go to isolate dependency injection concerns.
// The root command resolves configuration and the engine (flag, env, file)
// before any extension command runs; extensions read the result here
// instead of re-resolving it.

package extension

import (
	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/roman"
)

// Context provides extensions controlled access to shared state.
type Context interface {
	// Config returns the loaded user configuration.
	Config() *config.Config

	// Engine returns the validator engine for this invocation.
	Engine() roman.Engine
}

type extContext struct {
	cfg    *config.Config
	engine roman.Engine
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config, engine roman.Engine) Context {
	return &extContext{cfg: cfg, engine: engine}
}

func (c *extContext) Config() *config.Config { return c.cfg }

func (c *extContext) Engine() roman.Engine { return c.engine }
