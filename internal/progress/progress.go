// Package progress reports long-running checks on stderr. Nothing is drawn
// unless stderr is a terminal, so piped and scripted runs stay clean.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the smallest total worth drawing a counter for.
const minItems = 5

// Progress tracks and displays a counter of completed items.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	every   int
	isTTY   bool
	width   int // widest line drawn, for clearing
}

// New creates a progress reporter that writes to stderr.
func New(label string, total int) *Progress {
	return newProgress(os.Stderr, label, total, term.IsTerminal(int(os.Stderr.Fd())))
}

func newProgress(w io.Writer, label string, total int, tty bool) *Progress {
	// Redrawing on every one of thousands of items is wasted output.
	every := max(total/100, 1)
	return &Progress{w: w, label: label, total: total, every: every, isTTY: tty}
}

// Step advances the counter by one and redraws it when due.
func (p *Progress) Step() {
	p.current++
	if p.current%p.every == 0 || p.current == p.total {
		p.Print()
	}
}

// Print writes the current progress. On a terminal it redraws in place.
func (p *Progress) Print() {
	if p.total < minItems || !p.isTTY {
		return
	}
	pct := (p.current * 100) / p.total
	line := fmt.Sprintf("%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
	p.width = max(p.width, len(line))
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if p.total < minItems || !p.isTTY || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}
