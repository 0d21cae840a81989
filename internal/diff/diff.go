// Package diff computes and formats line diffs, used to show where a numeral
// table disagrees with the encoder.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// context is the number of unchanged rows kept on each side of a change.
// Longer unchanged runs collapse to "...".
const context = 3

const (
	red   = "\033[31m"
	green = "\033[32m"
	reset = "\033[0m"
)

// Result is a rendered line diff between two tables.
type Result struct {
	Old     string // label of the expected side
	New     string // label of the side under test
	Diff    string // plain diff text, one "- ", "+ " or "  " line per row
	Removed int    // rows only in Old
	Added   int    // rows only in New
}

// Equal reports whether the two sides had no differing rows.
func (r Result) Equal() bool {
	return r.Removed == 0 && r.Added == 0
}

// Compute diffs oldText against newText row by row.
func Compute(oldText, newText, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, rows := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), rows)

	r := Result{Old: oldLabel, New: newLabel}
	var sb strings.Builder
	for _, d := range diffs {
		lines := split(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			r.Removed += len(lines)
			write(&sb, "- ", lines)
		case diffmatchpatch.DiffInsert:
			r.Added += len(lines)
			write(&sb, "+ ", lines)
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*context {
				write(&sb, "  ", lines[:context])
				sb.WriteString("  ...\n")
				lines = lines[len(lines)-context:]
			}
			write(&sb, "  ", lines)
		}
	}
	r.Diff = sb.String()
	return r
}

// split breaks a diff chunk into rows, ignoring the final terminator.
func split(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func write(sb *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		sb.WriteString(prefix)
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
}

// Format renders the diff under a unified-style header and a change summary.
// With colour, removed rows are red and added rows green.
func (r Result) Format(colour bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", r.Old, r.New)
	for _, line := range split(r.Diff) {
		switch {
		case colour && strings.HasPrefix(line, "- "):
			sb.WriteString(red + line + reset + "\n")
		case colour && strings.HasPrefix(line, "+ "):
			sb.WriteString(green + line + reset + "\n")
		default:
			sb.WriteString(line + "\n")
		}
	}
	fmt.Fprintf(&sb, "%d removed, %d added\n", r.Removed, r.Added)
	return sb.String()
}
