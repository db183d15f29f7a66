// Package prompt wraps promptui for sgctl's interactive flows: free text,
// masked passwords, and yes/no confirmations. All prompts normalize Ctrl+C
// to ErrAborted so commands can exit quietly.
package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted")

// IsAborted reports whether err came from the user cancelling a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, ErrAborted) ||
		errors.Is(err, promptui.ErrInterrupt) ||
		errors.Is(err, promptui.ErrAbort)
}

// wrapError maps promptui cancellation errors to ErrAborted.
func wrapError(err error) error {
	if err != nil && IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Input asks for free text, pre-filled with defaultValue.
func Input(label string, defaultValue string) (string, error) {
	result, err := (&promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}).Run()
	return result, wrapError(err)
}

// InputRequired asks for free text and refuses an empty answer.
func InputRequired(label string) (string, error) {
	result, err := (&promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if input == "" {
				return promptui.ErrAbort
			}
			return nil
		},
	}).Run()
	return result, wrapError(err)
}
