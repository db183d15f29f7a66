package prompt

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question and reports the answer. Empty input picks
// defaultYes; Ctrl+C surfaces as ErrAborted.
func Confirm(label string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := (&promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", label, hint),
		IsConfirm: true,
	}).Run()

	switch {
	case err == nil:
		answer = strings.ToLower(answer)
		return answer == "y" || answer == "yes", nil
	case err == promptui.ErrInterrupt:
		return false, ErrAborted
	case err == promptui.ErrAbort:
		// promptui treats an explicit "n" as ErrAbort
		return false, nil
	case answer == "":
		return defaultYes, nil
	default:
		return false, err
	}
}

// ConfirmWithForce skips the prompt entirely when force is set.
func ConfirmWithForce(label string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	return Confirm(label, false)
}
