package service

import (
	"context"
	"strings"
	"time"

	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/store"
	"github.com/hance08/ledger/internal/validation"
	"github.com/shopspring/decimal"
)

// TransactionInput is the user-supplied part of a new transaction. A zero
// Date means now.
type TransactionInput struct {
	AccountID   string
	Description string
	Amount      decimal.Decimal
	Type        model.TransactionType
	Date        time.Time
}

// TransactionUpdate lists the fields an edit changes; nil means keep.
// AccountID may only repeat the current account.
type TransactionUpdate struct {
	AccountID   *string
	Description *string
	Amount      *decimal.Decimal
	Type        *model.TransactionType
	Date        *time.Time
}

// Summary totals the transactions of one account.
type Summary struct {
	Count   int
	Credits decimal.Decimal
	Debits  decimal.Decimal
}

// Net is credits minus debits.
func (s Summary) Net() decimal.Decimal {
	return s.Credits.Sub(s.Debits)
}

type TransactionService struct {
	store *store.Store
	now   func() time.Time
}

func NewTransactionService(st *store.Store, now func() time.Time) *TransactionService {
	return &TransactionService{store: st, now: now}
}

func validateTransaction(tx model.Transaction) error {
	if strings.TrimSpace(tx.AccountID) == "" {
		return invalidInput(errMissingAccount)
	}
	if err := validation.ValidateDescription(tx.Description); err != nil {
		return invalidInput(err)
	}
	if !tx.Amount.IsPositive() {
		return invalidInput(errNonPositiveAmount)
	}
	return nil
}

func (ts *TransactionService) Create(ctx context.Context, in TransactionInput) (model.Transaction, error) {
	draft := model.Transaction{
		AccountID:   strings.TrimSpace(in.AccountID),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        in.Date,
	}
	if draft.Date.IsZero() {
		draft.Date = ts.now()
	}
	if err := validateTransaction(draft); err != nil {
		return model.Transaction{}, err
	}
	return ts.store.CreateTransaction(ctx, draft)
}

func (ts *TransactionService) Update(ctx context.Context, id string, upd TransactionUpdate) (model.Transaction, error) {
	tx, err := ts.Get(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}

	if upd.AccountID != nil && strings.TrimSpace(*upd.AccountID) != tx.AccountID {
		return model.Transaction{}, ErrAccountChange
	}
	if upd.Description != nil {
		tx.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Amount != nil {
		tx.Amount = *upd.Amount
	}
	if upd.Type != nil {
		tx.Type = *upd.Type
	}
	if upd.Date != nil {
		tx.Date = *upd.Date
	}
	if err := validateTransaction(tx); err != nil {
		return model.Transaction{}, err
	}

	if err := ts.store.UpdateTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

func (ts *TransactionService) Delete(ctx context.Context, id string) error {
	return ts.store.DeleteTransaction(ctx, id)
}

// List refreshes the transactions of accountID and returns them.
func (ts *TransactionService) List(ctx context.Context, accountID string) ([]model.Transaction, error) {
	if err := ts.store.RefreshTransactions(ctx, accountID); err != nil {
		return nil, err
	}
	return ts.store.TransactionsForAccount(accountID), nil
}

// Get returns the cached transaction, loading it from the backend on a miss.
func (ts *TransactionService) Get(ctx context.Context, id string) (model.Transaction, error) {
	if tx, ok := ts.store.TransactionByID(id); ok {
		return tx, nil
	}
	return ts.store.LoadTransaction(ctx, id)
}

// Summarize totals the cached transactions of accountID.
func (ts *TransactionService) Summarize(accountID string) Summary {
	sum := Summary{Credits: decimal.Zero, Debits: decimal.Zero}
	for _, tx := range ts.store.TransactionsForAccount(accountID) {
		sum.Count++
		switch tx.Type {
		case model.TypeDebit:
			sum.Debits = sum.Debits.Add(tx.Amount)
		default:
			sum.Credits = sum.Credits.Add(tx.Amount)
		}
	}
	return sum
}
