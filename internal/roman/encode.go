package roman

import "strings"

// encode builds the canonical numeral for n by taking the largest group that
// still fits at every step. n must be within [Min, Max]; FromInt checks.
func encode(n int) string {
	var b strings.Builder
	b.Grow(maxEncodedLen)
	for _, g := range groups {
		if n == 0 {
			break
		}
		for n >= g.value {
			b.WriteString(g.symbol)
			n -= g.value
		}
	}
	return b.String()
}
