package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a strictly positive amount.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Decimal{}, fmt.Errorf("amount can't be empty")
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number format")
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than zero")
	}
	return d, nil
}

func ValidateAmount(val any) error {
	s, err := asString(val, "amount")
	if err != nil {
		return err
	}
	_, err = ParseAmount(s)
	return err
}

func ValidateDescription(val any) error {
	desc, err := asString(val, "description")
	if err != nil {
		return err
	}
	if desc == "" {
		return fmt.Errorf("description can't be empty")
	}
	if len([]rune(desc)) > constants.MaxDescriptionLen {
		return fmt.Errorf("description too long (max %d characters)", constants.MaxDescriptionLen)
	}
	return nil
}

func ParseType(input string) (model.TransactionType, error) {
	tt, err := model.ParseTransactionType(input)
	if err != nil {
		return 0, fmt.Errorf("invalid type %q (must be credit or debit)", strings.TrimSpace(input))
	}
	return tt, nil
}

// ParseDate reads a constants.DateFormat date. Empty input means today.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return t, nil
}

func ValidateDate(val any) error {
	s, err := asString(val, "date")
	if err != nil {
		return err
	}
	_, err = ParseDate(s, time.Now())
	return err
}
