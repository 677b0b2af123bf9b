package store

import (
	"context"
	"fmt"

	"github.com/hance08/ledger/internal/model"
)

// RefreshTransactions reloads the transactions of one account. The cached
// entries of other accounts are not touched.
func (s *Store) RefreshTransactions(ctx context.Context, accountID string) error {
	s.beginRefresh()

	fetched, err := s.remote.ListTransactions(ctx, accountID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		err = fmt.Errorf("refresh transactions of account %s: %w", accountID, err)
		s.endRefresh(err)
		s.logger.Warn("refresh failed", s.logger.Args("collection", "transactions", "account", accountID, "error", err))
		return err
	}
	s.endRefresh(nil)

	ids := make(map[string]struct{}, len(fetched))
	for _, tx := range fetched {
		ids[tx.ID] = struct{}{}
	}
	kept := s.transactions[:0:0]
	for _, tx := range s.transactions {
		if tx.AccountID == accountID {
			continue
		}
		if _, dup := ids[tx.ID]; dup {
			continue
		}
		kept = append(kept, tx)
	}
	s.transactions = append(kept, fetched...)

	s.logger.Debug("transactions refreshed", s.logger.Args("account", accountID, "count", len(fetched)))
	return nil
}

// LoadTransaction fetches a single transaction and upserts it into the cache.
func (s *Store) LoadTransaction(ctx context.Context, id string) (model.Transaction, error) {
	tx, err := s.remote.GetTransaction(ctx, id)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("load transaction %s: %w", id, err)
	}

	s.mu.Lock()
	s.putTransaction(tx)
	s.mu.Unlock()
	return tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	created, err := s.remote.CreateTransaction(ctx, draft)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.mu.Lock()
	s.putTransaction(created)
	s.mu.Unlock()

	s.logger.Debug("transaction created", s.logger.Args("id", created.ID, "account", created.AccountID))
	return created, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx model.Transaction) error {
	if err := s.remote.UpdateTransaction(ctx, tx); err != nil {
		return fmt.Errorf("update transaction %s: %w", tx.ID, err)
	}

	s.mu.Lock()
	if i := s.transactionIndex(tx.ID); i >= 0 {
		s.transactions[i] = tx
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.remote.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}

	s.mu.Lock()
	if i := s.transactionIndex(id); i >= 0 {
		s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	}
	s.mu.Unlock()
	return nil
}
