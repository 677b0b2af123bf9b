package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/model"
)

type wireTransaction struct {
	TransactionID   *int64      `json:"transactionId,omitempty"`
	AccountID       *int64      `json:"accountId"`
	Description     *string     `json:"description"`
	Amount          json.Number `json:"amount"`
	Type            *string     `json:"type"`
	TransactionDate *wireDate   `json:"transactionDate"`
}

func toWireTransaction(t model.Transaction, withID bool) wireTransaction {
	desc := t.Description
	typ := EncodeType(t.Type)
	date := wireDate(t.Date)
	w := wireTransaction{
		AccountID:       int64Ptr(EncodeID(t.AccountID)),
		Description:     &desc,
		Amount:          wireAmount(t.Amount),
		Type:            &typ,
		TransactionDate: &date,
	}
	if withID {
		w.TransactionID = int64Ptr(EncodeID(t.ID))
	}
	return w
}

func (w wireTransaction) toModel() (model.Transaction, error) {
	switch {
	case w.TransactionID == nil:
		return model.Transaction{}, missing("transactionId")
	case w.AccountID == nil:
		return model.Transaction{}, missing("accountId")
	case w.Description == nil:
		return model.Transaction{}, missing("description")
	case w.Amount == "":
		return model.Transaction{}, missing("amount")
	case w.Type == nil:
		return model.Transaction{}, missing("type")
	case w.TransactionDate == nil:
		return model.Transaction{}, missing("transactionDate")
	}

	amount, err := parseAmount("amount", w.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:          DecodeID(*w.TransactionID),
		AccountID:   DecodeID(*w.AccountID),
		Description: *w.Description,
		Amount:      amount,
		Type:        DecodeType(*w.Type),
		Date:        time.Time(*w.TransactionDate),
	}, nil
}

// EncodeTransaction encodes a persisted transaction, identifier included.
func EncodeTransaction(t model.Transaction) ([]byte, error) {
	return json.Marshal(toWireTransaction(t, true))
}

// EncodeTransactionDraft encodes a transaction for creation, without
// transactionId.
func EncodeTransactionDraft(t model.Transaction) ([]byte, error) {
	return json.Marshal(toWireTransaction(t, false))
}

func DecodeTransaction(data []byte) (model.Transaction, error) {
	var w wireTransaction
	if err := json.Unmarshal(data, &w); err != nil {
		return model.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	t, err := w.toModel()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("decode transaction: %w", err)
	}
	return t, nil
}

func DecodeTransactions(data []byte) ([]model.Transaction, error) {
	var ws []wireTransaction
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	txs := make([]model.Transaction, 0, len(ws))
	for i, w := range ws {
		t, err := w.toModel()
		if err != nil {
			return nil, fmt.Errorf("decode transactions[%d]: %w", i, err)
		}
		txs = append(txs, t)
	}
	return txs, nil
}
