// Package service holds the use cases behind the CLI commands. It validates
// input, stamps timestamps and delegates every state change to the store.
package service

import (
	"time"

	"github.com/hance08/ledger/internal/store"
	"github.com/pterm/pterm"
)

const defaultSyncConcurrency = 4

type Config struct {
	DefaultCurrency string
	// SyncConcurrency bounds the transaction refreshes Sync runs at once.
	SyncConcurrency int
}

type Service struct {
	Account     *AccountService
	Transaction *TransactionService

	store  *store.Store
	config Config
	logger *pterm.Logger
}

func NewService(st *store.Store, cfg Config, logger *pterm.Logger) *Service {
	if cfg.SyncConcurrency <= 0 {
		cfg.SyncConcurrency = defaultSyncConcurrency
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Service{
		Account:     NewAccountService(st, time.Now),
		Transaction: NewTransactionService(st, time.Now),
		store:       st,
		config:      cfg,
		logger:      logger,
	}
}

// Currency is the ISO code amounts are displayed in.
func (s *Service) Currency() string {
	return s.config.DefaultCurrency
}
