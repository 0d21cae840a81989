package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/jpl-au/roman/internal/roman"
)

var menuOptions = []string{"1) Roman to Int", "2) Int to Roman", "Q) Quit"}

// Survey prompts with survey widgets on the controlling terminal. Ctrl-C
// answers "Q", which quits the current prompt.
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a terminal prompter. opts are passed to every prompt,
// e.g. survey.WithStdio.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

// Menu shows a select list and returns "1", "2" or "Q".
func (p *Survey) Menu(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var choice string
	prompt := &survey.Select{
		Message: "Select an option:",
		Options: menuOptions,
	}
	if err := survey.AskOne(prompt, &choice, p.opts...); err != nil {
		return translateSurveyErr(err)
	}
	if choice == "" {
		return "", fmt.Errorf("%w: no option selected", ErrInput)
	}
	return choice[:1], nil
}

// Ask shows a text input.
func (p *Survey) Ask(ctx context.Context, message string, limit int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: strings.TrimSuffix(message, " ")}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return translateSurveyErr(err)
	}
	if len(out) > limit {
		return "", fmt.Errorf("%w: %d bytes (max %d)", roman.ErrInputTooLong, len(out), limit)
	}
	return out, nil
}

func translateSurveyErr(err error) (string, error) {
	if errors.Is(err, terminal.InterruptErr) {
		return "Q", nil
	}
	return "", fmt.Errorf("%w: %w", ErrInput, err)
}
