// pattern.go implements the comparison validator on top of regexp.
//
// The state machine in validate.go is the reference engine. This one encodes
// the canonical grammar directly and is used to cross-check it and as the
// alternative in benchmarks.

package roman

import "regexp"

// Grammar is the canonical standard-form grammar, thousands to units.
const Grammar = `^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`

var grammar = regexp.MustCompile(Grammar)

// MatchesPattern reports whether candidate matches Grammar. Grammar matches
// the empty string, which is not a numeral, so that case is rejected first.
func MatchesPattern(candidate string) bool {
	if candidate == "" {
		return false
	}
	return grammar.MatchString(candidate)
}
