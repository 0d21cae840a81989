// Package all imports all built-in roman extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/roman/extension/convert"
	_ "github.com/jpl-au/roman/extension/core"
	_ "github.com/jpl-au/roman/extension/session"
	_ "github.com/jpl-au/roman/extension/tools"
)
