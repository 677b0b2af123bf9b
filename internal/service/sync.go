package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// SyncReport describes the outcome of a full refresh.
type SyncReport struct {
	Accounts     int
	Transactions int
	// Failures maps an account id to the error its refresh returned.
	Failures map[string]error
	// LastError is the store's last refresh error once the sync settled.
	LastError error
	Duration  time.Duration
}

func (r SyncReport) OK() bool {
	return len(r.Failures) == 0
}

// Sync refreshes the account list, then the transactions of every account.
// Transaction refreshes run concurrently and do not cancel each other; their
// failures are collected in the report. The returned error is set only when
// the account list itself could not be refreshed.
func (s *Service) Sync(ctx context.Context) (SyncReport, error) {
	start := time.Now()
	report := SyncReport{Failures: map[string]error{}}

	if err := s.store.RefreshAccounts(ctx); err != nil {
		return report, err
	}
	accounts := s.store.Accounts()
	report.Accounts = len(accounts)

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(s.config.SyncConcurrency)
	for _, a := range accounts {
		a := a
		g.Go(func() error {
			if err := s.store.RefreshTransactions(ctx, a.ID); err != nil {
				mu.Lock()
				report.Failures[a.ID] = err
				mu.Unlock()
				return err
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, a := range accounts {
		report.Transactions += len(s.store.TransactionsForAccount(a.ID))
	}
	report.LastError = s.store.LastError()
	report.Duration = time.Since(start)

	s.logger.Info("sync finished", s.logger.Args(
		"accounts", report.Accounts,
		"transactions", report.Transactions,
		"failures", len(report.Failures),
		"duration", report.Duration,
	))
	return report, nil
}
