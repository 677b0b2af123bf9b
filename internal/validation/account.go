// Package validation checks user input before it becomes a request.
//
// Validators take any so they can be plugged into survey and huh prompts as
// well as called from flag parsing.
package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

func asString(val any, field string) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", field)
	}
	return strings.TrimSpace(s), nil
}

// ValidateAccountName checks a trimmed, non-empty name of bounded length.
func ValidateAccountName(val any) error {
	name, err := asString(val, "account name")
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}
	if len([]rune(name)) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ParseBalance parses a balance typed by the user. Empty input means zero.
func ParseBalance(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number format")
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("balance can't be negative")
	}
	return d, nil
}

func ValidateBalance(val any) error {
	s, err := asString(val, "balance")
	if err != nil {
		return err
	}
	_, err = ParseBalance(s)
	return err
}

// ParseStatus accepts a status literal in any case.
func ParseStatus(input string) (model.AccountStatus, error) {
	st, err := model.ParseAccountStatus(input)
	if err != nil {
		return 0, fmt.Errorf("invalid status %q (must be one of %s)", strings.TrimSpace(input), joinStatuses())
	}
	return st, nil
}

func joinStatuses() string {
	names := make([]string, len(model.AccountStatuses))
	for i, st := range model.AccountStatuses {
		names[i] = st.String()
	}
	return strings.Join(names, ", ")
}
