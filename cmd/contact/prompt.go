package contact

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("aborted by user")

// Prompter asks the user for one value at a time. Help carries the field's
// current validation error, if any.
type Prompter interface {
	Input(ctx context.Context, message, def, help string) (string, error)
	Select(ctx context.Context, message string, options []string, def, help string) (string, error)
	TextArea(ctx context.Context, message, def, help string) (string, error)
	Confirm(ctx context.Context, message string, def bool, help string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, message, def, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	err := survey.AskOne(&survey.Input{Message: message, Default: def, Help: help}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Select(ctx context.Context, message string, options []string, def, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prompt := &survey.Select{Message: message, Options: options, Help: help}
	for _, o := range options {
		if o == def {
			prompt.Default = def
			break
		}
	}
	var out string
	err := survey.AskOne(prompt, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) TextArea(ctx context.Context, message, def, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	err := survey.AskOne(&survey.Multiline{Message: message, Default: def, Help: help}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(ctx context.Context, message string, def bool, help string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def, Help: help}, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
