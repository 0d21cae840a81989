package roman

// decode sums symbol values, subtracting a value that is strictly smaller
// than its successor. The result is only meaningful for a string IsValid
// accepted; ToInt is the sole caller.
func decode(s string) int {
	total := 0
	for i := range len(s) {
		cur := Value(s[i])
		next := 0
		if i+1 < len(s) {
			next = Value(s[i+1])
		}
		if cur < next {
			total -= cur
		} else {
			total += cur
		}
	}
	return total
}
