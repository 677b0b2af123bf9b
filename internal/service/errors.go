package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput wraps a validation failure of user input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccountChange is returned when an edit tries to move a transaction
	// to another account.
	ErrAccountChange = errors.New("a transaction can't be moved to another account")

	errNegativeBalance   = errors.New("balance can't be negative")
	errNonPositiveAmount = errors.New("amount must be greater than zero")
	errMissingAccount    = errors.New("account id can't be empty")
)

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
