// Package prompts holds the interactive forms used when a command is run
// without flags.
package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/ledger/internal/ui"
)

// stringValidator adapts an any-typed validator to huh's string signature.
func stringValidator(fn func(any) error) func(string) error {
	return func(s string) error { return fn(s) }
}

// PromptConfirm asks a yes/no question through survey.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirmation := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmation, ui.IconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}

// PromptInput prompts for a text value prefilled with defaultValue.
func PromptInput(message, defaultValue string, validator func(string) error) (string, error) {
	value := defaultValue

	input := huh.NewInput().
		Title(message).
		Value(&value)
	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}
	return value, nil
}
