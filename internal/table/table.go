// Package table builds, reads and checks the numeral table: every value in
// [1, 3999] paired with its canonical numeral.
//
// The JSON form is an array of [numeral, value] string pairs, which is what
// benchmark fixtures have always used:
//
//	[["I","1"],["II","2"],...]
package table

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/roman/internal/diff"
	"github.com/jpl-au/roman/internal/roman"
)

// Pair is one table row.
type Pair struct {
	Numeral string
	Value   int
}

// MarshalJSON encodes the pair as ["numeral","value"].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Numeral, strconv.Itoa(p.Value)})
}

// UnmarshalJSON decodes ["numeral","value"].
func (p *Pair) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("table row %s: %w", b, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("table row %s: want 2 elements, got %d", b, len(raw))
	}
	n, err := strconv.Atoi(raw[1])
	if err != nil {
		return fmt.Errorf("table row %s: value: %w", b, err)
	}
	p.Numeral, p.Value = raw[0], n
	return nil
}

// Build returns the rows for from..to inclusive.
func Build(from, to int) ([]Pair, error) {
	if from > to {
		return nil, fmt.Errorf("empty range %d..%d", from, to)
	}
	pairs := make([]Pair, 0, to-from+1)
	for n := from; n <= to; n++ {
		s, err := roman.FromInt(n)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Numeral: s, Value: n})
	}
	return pairs, nil
}

// Full returns the whole table.
func Full() []Pair {
	pairs, _ := Build(roman.Min, roman.Max)
	return pairs
}

// Write encodes pairs as JSON.
func Write(w io.Writer, pairs []Pair) error {
	return json.NewEncoder(w).Encode(pairs)
}

// Read decodes a JSON table.
func Read(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	return pairs, nil
}

// Text renders pairs one per line as "value numeral", the form diffs are
// taken over.
func Text(pairs []Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%d %s\n", p.Value, p.Numeral)
	}
	return b.String()
}

// Compare diffs pairs against the encoder's output for the same values.
// Values the encoder rejects are rendered as "value !out of range".
func Compare(pairs []Pair, label string) diff.Result {
	want := make([]Pair, len(pairs))
	for i, p := range pairs {
		s, err := roman.FromInt(p.Value)
		if err != nil {
			s = "!out of range"
		}
		want[i] = Pair{Numeral: s, Value: p.Value}
	}
	return diff.Compute(Text(want), Text(pairs), "encoder", label)
}
