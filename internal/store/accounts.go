package store

import (
	"context"
	"fmt"

	"github.com/hance08/ledger/internal/model"
)

// RefreshAccounts replaces the cached accounts with the backend's list. On
// failure the cache is left untouched and the error is recorded.
func (s *Store) RefreshAccounts(ctx context.Context) error {
	s.beginRefresh()

	accounts, err := s.remote.ListAccounts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		err = fmt.Errorf("refresh accounts: %w", err)
		s.endRefresh(err)
		s.logger.Warn("refresh failed", s.logger.Args("collection", "accounts", "error", err))
		return err
	}
	s.endRefresh(nil)
	s.accounts = accounts
	s.logger.Debug("accounts refreshed", s.logger.Args("count", len(accounts)))
	return nil
}

// LoadAccount fetches a single account and upserts it into the cache.
func (s *Store) LoadAccount(ctx context.Context, id string) (model.Account, error) {
	a, err := s.remote.GetAccount(ctx, id)
	if err != nil {
		return model.Account{}, fmt.Errorf("load account %s: %w", id, err)
	}

	s.mu.Lock()
	s.putAccount(a)
	s.mu.Unlock()
	return a, nil
}

// CreateAccount posts draft and caches the account the backend returns.
func (s *Store) CreateAccount(ctx context.Context, draft model.Account) (model.Account, error) {
	created, err := s.remote.CreateAccount(ctx, draft)
	if err != nil {
		return model.Account{}, fmt.Errorf("create account: %w", err)
	}

	s.mu.Lock()
	s.putAccount(created)
	s.mu.Unlock()

	s.logger.Debug("account created", s.logger.Args("id", created.ID))
	return created, nil
}

// UpdateAccount sends a and, once the backend accepts it, replaces the cached
// entry with the same id.
func (s *Store) UpdateAccount(ctx context.Context, a model.Account) error {
	if err := s.remote.UpdateAccount(ctx, a); err != nil {
		return fmt.Errorf("update account %s: %w", a.ID, err)
	}

	s.mu.Lock()
	if i := s.accountIndex(a.ID); i >= 0 {
		s.accounts[i] = a
	}
	s.mu.Unlock()
	return nil
}

// DeleteAccount removes the account on the backend, then from the cache.
func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	if err := s.remote.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}

	s.mu.Lock()
	if i := s.accountIndex(id); i >= 0 {
		s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	}
	s.mu.Unlock()
	return nil
}
