package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account.
// The zero value is StatusActive, which is also the fallback for unknown input.
type AccountStatus int

const (
	StatusActive AccountStatus = iota
	StatusInactive
	StatusPending
)

// AccountStatuses lists every status in display order.
var AccountStatuses = []AccountStatus{StatusActive, StatusInactive, StatusPending}

func (s AccountStatus) String() string {
	switch s {
	case StatusInactive:
		return "inactive"
	case StatusPending:
		return "pending"
	default:
		return "active"
	}
}

// ParseAccountStatus strictly parses user input such as "active" or "Pending".
func ParseAccountStatus(s string) (AccountStatus, error) {
	for _, st := range AccountStatuses {
		if strings.EqualFold(strings.TrimSpace(s), st.String()) {
			return st, nil
		}
	}
	return StatusActive, fmt.Errorf("invalid account status '%s' (must be active, inactive or pending)", s)
}

// Account is a ledger account as seen by the client.
// ID is empty until the remote has persisted the account.
type Account struct {
	ID          string
	Name        string
	Status      AccountStatus
	Balance     decimal.Decimal
	LastUpdated time.Time
}

// IsPersisted reports whether the account carries a server-assigned ID.
func (a Account) IsPersisted() bool {
	return a.ID != ""
}
