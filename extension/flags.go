// flags.go defines constants for command-level CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "iterations" -> FlagIterations).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagLocal   = "local"    // Use local config (.roman/config.yaml)
	FlagNoColor = "no-color" // Disable coloured diff output
	FlagTest    = "test"     // Session test mode: no menu, one conversion

	// String flags

	FlagTable = "table" // Table file to check against the encoder

	// Integer flags

	FlagFrom       = "from"       // First value of a table range
	FlagIterations = "iterations" // Benchmark iterations
	FlagLimit      = "limit"      // Limit number of results
	FlagSince      = "since"      // History window (7d, 4w)
	FlagTo         = "to"         // Last value of a table range
)
