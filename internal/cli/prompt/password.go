package prompt

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ErrPasswordMismatch indicates the confirmation did not match.
var ErrPasswordMismatch = errors.New("passwords do not match")

// MinPasswordLength matches the server-side minimum for new accounts.
const MinPasswordLength = 8

// Password asks for a masked password without validation, for login-style
// prompts where the existing password may predate current rules.
func Password(label string) (string, error) {
	result, err := (&promptui.Prompt{
		Label: label,
		Mask:  '*',
	}).Run()
	return result, wrapError(err)
}

// PasswordWithValidation asks for a masked password of at least minLength
// characters.
func PasswordWithValidation(label string, minLength int) (string, error) {
	result, err := (&promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) < minLength {
				return fmt.Errorf("password must be at least %d characters", minLength)
			}
			return nil
		},
	}).Run()
	return result, wrapError(err)
}

// PasswordWithConfirmation asks for a password twice and fails with
// ErrPasswordMismatch when the answers differ.
func PasswordWithConfirmation(label, confirmLabel string, minLength int) (string, error) {
	password, err := PasswordWithValidation(label, minLength)
	if err != nil {
		return "", err
	}

	confirm, err := Password(confirmLabel)
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

// NewPassword asks for a new account password with confirmation, enforcing
// the server's minimum length.
func NewPassword() (string, error) {
	return PasswordWithConfirmation("Password", "Confirm password", MinPasswordLength)
}
