// Package roman converts between Roman numerals and integers in [1, 3999]
// and decides whether a string is a numeral in standard (canonical) form.
//
// # Validation
//
// IsValid runs a single left-to-right pass over the candidate with an
// explicit state machine. Each position is fed to a transition function
// together with its neighbours; the transition either advances the state or
// rejects. MatchesPattern answers the same question with the canonical
// regular grammar and exists for comparison and benchmarking. Callers pick
// one per call through Engine.
//
// # Conversion
//
// ToInt and FromInt are the only ways to convert. ToInt validates before it
// decodes, because the additive/subtractive decode is meaningless on
// malformed input. FromInt range-checks before it encodes.
//
// # Errors
//
// Failures wrap one of the sentinel errors in errors.go. Use errors.Is:
//
//	if errors.Is(err, roman.ErrOutOfRange) {
//	    // report the range, not the grammar
//	}
package roman
