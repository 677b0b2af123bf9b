package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned before any network call when an argument
	// cannot be turned into a valid request (for example a non-numeric id).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTransport means the request could not complete: connection failure,
	// cancelled context, or a body that could not be read.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidResponse means the response lacked a usable status line.
	ErrInvalidResponse = errors.New("invalid response from server")

	// ErrNotFound is a 404 on a single-resource operation.
	ErrNotFound = errors.New("resource not found")

	// ErrDecoding means a successful response carried a body that does not
	// match the wire schema.
	ErrDecoding = errors.New("failed to decode response")
)

// MsgAccountMissing is the message carried by the 400 answered to transaction
// mutations that reference an unknown account.
const MsgAccountMissing = "Account doesn't exist"

// StatusError is any non-success status that has no more specific mapping.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: %d", e.Code)
}

// BadRequestError is a 400 on transaction create/update, signalling that the
// referenced account does not exist on the server.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return "bad request: " + e.Message
}

func invalidRequest(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, a...))
}

func statusError(code int) error {
	return &StatusError{Code: code}
}

// Describe returns a short, human readable description of err's kind, suitable
// for a status line. Unknown errors are described by their own message.
func Describe(err error) string {
	var statusErr *StatusError
	var badReq *BadRequestError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request"
	case errors.Is(err, ErrTransport):
		return "Could not reach the ledger service"
	case errors.Is(err, ErrInvalidResponse):
		return "Invalid response from server"
	case errors.Is(err, ErrNotFound):
		return "Resource not found"
	case errors.Is(err, ErrDecoding):
		return "Failed to decode response"
	case errors.As(err, &badReq):
		return "Bad request: " + badReq.Message
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP error: %d", statusErr.Code)
	default:
		return err.Error()
	}
}
