package store

import (
	"context"

	"github.com/hance08/ledger/internal/model"
)

// Remote is the subset of the backend client the store depends on.
// *remote.Client satisfies it.
type Remote interface {
	AccountRemote
	TransactionRemote
}

type AccountRemote interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetAccount(ctx context.Context, id string) (model.Account, error)
	CreateAccount(ctx context.Context, draft model.Account) (model.Account, error)
	UpdateAccount(ctx context.Context, a model.Account) error
	DeleteAccount(ctx context.Context, id string) error
}

type TransactionRemote interface {
	ListTransactions(ctx context.Context, accountID string) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (model.Transaction, error)
	CreateTransaction(ctx context.Context, draft model.Transaction) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, tx model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}
