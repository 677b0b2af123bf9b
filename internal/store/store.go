// Package store keeps the client-side copy of ledger state.
//
// Every mutation talks to the backend first and edits the cache only once the
// backend has confirmed. Network calls run outside the lock; edits are applied
// under a single write lock so readers never observe a half-applied change.
package store

import (
	"sync"

	"github.com/hance08/ledger/internal/model"
	"github.com/pterm/pterm"
)

type Store struct {
	remote Remote
	logger *pterm.Logger

	mu           sync.RWMutex
	accounts     []model.Account
	transactions []model.Transaction
	refreshing   int
	lastErr      error
}

// New returns an empty store backed by remote. A nil logger disables logging.
func New(remote Remote, logger *pterm.Logger) *Store {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Store{remote: remote, logger: logger}
}

// Loading reports whether at least one refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshing > 0
}

// LastError returns the error of the most recent failed refresh, or nil if
// the most recent refresh has not failed.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) beginRefresh() {
	s.mu.Lock()
	s.refreshing++
	s.lastErr = nil
	s.mu.Unlock()
}

// endRefresh must be called with s.mu held.
func (s *Store) endRefresh(err error) {
	s.refreshing--
	if err != nil {
		s.lastErr = err
	}
}

func (s *Store) Accounts() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) AccountByID(id string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.accountIndex(id); i >= 0 {
		return s.accounts[i], true
	}
	return model.Account{}, false
}

// Transactions returns every cached transaction regardless of account.
func (s *Store) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) TransactionByID(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.transactionIndex(id); i >= 0 {
		return s.transactions[i], true
	}
	return model.Transaction{}, false
}

// TransactionsForAccount returns the cached transactions of one account in
// cache order.
func (s *Store) TransactionsForAccount(accountID string) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Transaction{}
	for _, tx := range s.transactions {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out
}

func (s *Store) accountIndex(id string) int {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) transactionIndex(id string) int {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return i
		}
	}
	return -1
}

// putAccount replaces the entry with a's id or appends a. Caller holds s.mu.
func (s *Store) putAccount(a model.Account) {
	if i := s.accountIndex(a.ID); i >= 0 {
		s.accounts[i] = a
		return
	}
	s.accounts = append(s.accounts, a)
}

func (s *Store) putTransaction(tx model.Transaction) {
	if i := s.transactionIndex(tx.ID); i >= 0 {
		s.transactions[i] = tx
		return
	}
	s.transactions = append(s.transactions, tx)
}
