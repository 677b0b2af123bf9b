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

// AccountInput is the user-supplied part of a new account.
type AccountInput struct {
	Name    string
	Status  model.AccountStatus
	Balance decimal.Decimal
}

// AccountUpdate lists the fields an edit changes; nil means keep.
type AccountUpdate struct {
	Name    *string
	Status  *model.AccountStatus
	Balance *decimal.Decimal
}

// Overview summarises the cached accounts.
type Overview struct {
	AccountCount int
	TotalBalance decimal.Decimal
	ByStatus     map[model.AccountStatus]int
}

// ActiveCount is the number of accounts in the active status.
func (o Overview) ActiveCount() int {
	return o.ByStatus[model.StatusActive]
}

type AccountService struct {
	store *store.Store
	now   func() time.Time
}

func NewAccountService(st *store.Store, now func() time.Time) *AccountService {
	return &AccountService{store: st, now: now}
}

func validateAccount(name string, balance decimal.Decimal) error {
	if err := validation.ValidateAccountName(name); err != nil {
		return invalidInput(err)
	}
	if balance.IsNegative() {
		return invalidInput(errNegativeBalance)
	}
	return nil
}

func (as *AccountService) Create(ctx context.Context, in AccountInput) (model.Account, error) {
	if err := validateAccount(in.Name, in.Balance); err != nil {
		return model.Account{}, err
	}
	draft := model.Account{
		Name:        strings.TrimSpace(in.Name),
		Status:      in.Status,
		Balance:     in.Balance,
		LastUpdated: as.now(),
	}
	return as.store.CreateAccount(ctx, draft)
}

// Update applies the set fields of upd to account id and sends the result.
func (as *AccountService) Update(ctx context.Context, id string, upd AccountUpdate) (model.Account, error) {
	a, err := as.Get(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	if upd.Name != nil {
		a.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.Balance != nil {
		a.Balance = *upd.Balance
	}
	if err := validateAccount(a.Name, a.Balance); err != nil {
		return model.Account{}, err
	}
	a.LastUpdated = as.now()

	if err := as.store.UpdateAccount(ctx, a); err != nil {
		return model.Account{}, err
	}
	return a, nil
}

func (as *AccountService) Delete(ctx context.Context, id string) error {
	return as.store.DeleteAccount(ctx, id)
}

// List refreshes the accounts from the backend and returns them.
func (as *AccountService) List(ctx context.Context) ([]model.Account, error) {
	if err := as.store.RefreshAccounts(ctx); err != nil {
		return nil, err
	}
	return as.store.Accounts(), nil
}

// Get returns the cached account, loading it from the backend on a miss.
func (as *AccountService) Get(ctx context.Context, id string) (model.Account, error) {
	if a, ok := as.store.AccountByID(id); ok {
		return a, nil
	}
	return as.store.LoadAccount(ctx, id)
}

// Overview totals the cached accounts without touching the network.
func (as *AccountService) Overview() Overview {
	o := Overview{
		TotalBalance: decimal.Zero,
		ByStatus:     make(map[model.AccountStatus]int, len(model.AccountStatuses)),
	}
	for _, st := range model.AccountStatuses {
		o.ByStatus[st] = 0
	}
	for _, a := range as.store.Accounts() {
		o.AccountCount++
		o.TotalBalance = o.TotalBalance.Add(a.Balance)
		o.ByStatus[a.Status]++
	}
	return o
}
