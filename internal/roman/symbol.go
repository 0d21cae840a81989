// symbol.go holds the read-only rule tables shared by the validator, the
// decoder and the encoder.

package roman

// Representable range.
const (
	Min = 1
	Max = 3999
)

// values maps an ASCII byte to its symbol value. Zero means "not a symbol";
// no real symbol has value zero.
var values = [128]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// Value returns the value of symbol c, or 0 if c is not one of IVXLCDM.
// Lower-case letters are not symbols.
func Value(c byte) int {
	if c >= byte(len(values)) {
		return 0
	}
	return values[c]
}

// maxRun is the longest run of one symbol allowed, keyed by value.
var maxRun = map[int]int{
	1:    3,
	5:    1,
	10:   3,
	50:   1,
	100:  3,
	500:  1,
	1000: 3,
}

// single marks the symbols that may appear at most once anywhere in a
// numeral. The bit is used in the validator's seen set.
var single = map[int]uint8{
	5:   1 << 0, // V
	50:  1 << 1, // L
	500: 1 << 2, // D
}

// subtractive lists the legal (smaller, larger) pairs.
var subtractive = map[[2]int]bool{
	{1, 5}:      true, // IV
	{1, 10}:     true, // IX
	{10, 50}:    true, // XL
	{10, 100}:   true, // XC
	{100, 500}:  true, // CD
	{100, 1000}: true, // CM
}

// groups drives the greedy encoder, largest first.
var groups = [...]struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// maxEncodedLen is the length of the longest numeral, MMMDCCCLXXXVIII (3888).
const maxEncodedLen = 15
