// prompt.go defines how the session obtains lines from the user.
//
// Line is the plain implementation for pipes, scripts and tests: it writes
// the prompt text and reads one newline-terminated line. Survey (see
// prompt_survey.go) is used on an interactive terminal.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/roman/internal/roman"
)

// menuLength bounds a menu selection line.
const menuLength = 8

const menuText = "\n1) Roman to Int\n2) Int to Roman\nQ) Quit\n\nSelect an option: "

// Prompter reads user input for the session.
type Prompter interface {
	// Menu presents the main menu and returns the selection line.
	Menu(ctx context.Context) (string, error)
	// Ask shows message and returns one line of at most limit bytes with
	// the line terminator removed. Longer lines fail with
	// roman.ErrInputTooLong; a closed stream fails with ErrInput.
	Ask(ctx context.Context, message string, limit int) (string, error)
}

// Line prompts on a writer and reads lines from a reader.
type Line struct {
	r       *bufio.Reader
	w       io.Writer
	pending chan readResult // in-flight read abandoned by a cancelled Ask
}

type readResult struct {
	line string
	err  error
}

// NewLine returns a Line prompter. Prompts go to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Menu writes the menu and reads a selection.
func (l *Line) Menu(ctx context.Context) (string, error) {
	return l.Ask(ctx, menuText, menuLength)
}

// Ask writes message and reads one line. Cancelling ctx returns ctx.Err()
// without waiting for the line; the next Ask resumes the same read.
func (l *Line) Ask(ctx context.Context, message string, limit int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(l.w, message)

	if l.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := l.r.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		l.pending = ch
	}

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-l.pending:
		l.pending = nil
	}

	line, err := res.line, res.err
	if err != nil {
		// A final line without a terminator still counts.
		if !errors.Is(err, io.EOF) || line == "" {
			return "", fmt.Errorf("%w: %w", ErrInput, err)
		}
	}
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if len(line) > limit {
		return "", fmt.Errorf("%w: %d bytes (max %d)", roman.ErrInputTooLong, len(line), limit)
	}
	return line, nil
}
