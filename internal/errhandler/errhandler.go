// Package errhandler turns command errors into terminal output.
package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/ledger/internal/remote"
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Message is the capitalized text shown for err, with a hint appended for
// failures the user can act on.
func Message(err error) string {
	msg := capitalize(err.Error())
	switch {
	case errors.Is(err, remote.ErrTransport):
		msg += " (check remote.base_url or LEDGER_REMOTE_BASE_URL)"
	case errors.Is(err, remote.ErrNotFound):
		msg += " (it may have been deleted on the ledger service)"
	}
	return msg
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
