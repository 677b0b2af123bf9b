package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/model"
)

// wireAccount is the backend's account shape. AccountID is a pointer so that
// drafts can leave it out of the body entirely and decoding can tell a missing
// id from id 0.
type wireAccount struct {
	AccountID   *int64      `json:"accountId,omitempty"`
	AccountName *string     `json:"accountName"`
	Status      *string     `json:"status"`
	Balance     json.Number `json:"balance"`
	LastUpdated *wireDate   `json:"lastUpdated"`
}

func toWireAccount(a model.Account, withID bool) wireAccount {
	name := a.Name
	status := EncodeStatus(a.Status)
	date := wireDate(a.LastUpdated)
	w := wireAccount{
		AccountName: &name,
		Status:      &status,
		Balance:     wireAmount(a.Balance),
		LastUpdated: &date,
	}
	if withID {
		w.AccountID = int64Ptr(EncodeID(a.ID))
	}
	return w
}

func (w wireAccount) toModel() (model.Account, error) {
	switch {
	case w.AccountID == nil:
		return model.Account{}, missing("accountId")
	case w.AccountName == nil:
		return model.Account{}, missing("accountName")
	case w.Status == nil:
		return model.Account{}, missing("status")
	case w.Balance == "":
		return model.Account{}, missing("balance")
	case w.LastUpdated == nil:
		return model.Account{}, missing("lastUpdated")
	}

	balance, err := parseAmount("balance", w.Balance)
	if err != nil {
		return model.Account{}, err
	}

	return model.Account{
		ID:          DecodeID(*w.AccountID),
		Name:        *w.AccountName,
		Status:      DecodeStatus(*w.Status),
		Balance:     balance,
		LastUpdated: time.Time(*w.LastUpdated),
	}, nil
}

// EncodeAccount encodes a persisted account, identifier included, as sent on PUT.
func EncodeAccount(a model.Account) ([]byte, error) {
	return json.Marshal(toWireAccount(a, true))
}

// EncodeAccountDraft encodes an account for creation. The body has no
// accountId key; the server assigns it.
func EncodeAccountDraft(a model.Account) ([]byte, error) {
	return json.Marshal(toWireAccount(a, false))
}

func DecodeAccount(data []byte) (model.Account, error) {
	var w wireAccount
	if err := json.Unmarshal(data, &w); err != nil {
		return model.Account{}, fmt.Errorf("decode account: %w", err)
	}
	a, err := w.toModel()
	if err != nil {
		return model.Account{}, fmt.Errorf("decode account: %w", err)
	}
	return a, nil
}

func DecodeAccounts(data []byte) ([]model.Account, error) {
	var ws []wireAccount
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	accounts := make([]model.Account, 0, len(ws))
	for i, w := range ws {
		a, err := w.toModel()
		if err != nil {
			return nil, fmt.Errorf("decode accounts[%d]: %w", i, err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
