package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a transaction adds to or takes from an account.
// The zero value is TypeCredit, which is also the fallback for unknown input.
type TransactionType int

const (
	TypeCredit TransactionType = iota
	TypeDebit
)

var TransactionTypes = []TransactionType{TypeCredit, TypeDebit}

func (t TransactionType) String() string {
	if t == TypeDebit {
		return "debit"
	}
	return "credit"
}

// ParseTransactionType strictly parses user input such as "debit" or "Credit".
func ParseTransactionType(s string) (TransactionType, error) {
	for _, tt := range TransactionTypes {
		if strings.EqualFold(strings.TrimSpace(s), tt.String()) {
			return tt, nil
		}
	}
	return TypeCredit, fmt.Errorf("invalid transaction type '%s' (must be credit or debit)", s)
}

// Transaction is a single ledger movement belonging to one account.
// AccountID never changes once the transaction has been created.
type Transaction struct {
	ID          string
	AccountID   string
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Date        time.Time
}

func (t Transaction) IsPersisted() bool {
	return t.ID != ""
}

// Signed returns the amount with the sign implied by the type: debits are negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
