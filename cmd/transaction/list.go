package transaction

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc   *service.Service
	limit int
}

func NewListCmd(a *app.App) *cobra.Command {
	runner := &ListCommandRunner{}

	cmd := &cobra.Command{
		Use:     "list [account-id]",
		Aliases: []string{"ls"},
		Short:   "List the transactions of an account",
		Long:    `List the transactions of an account. Without an argument the account is picked interactively.`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.svc = a.Service

			accountID := ""
			if len(args) == 1 {
				accountID = args[0]
			}
			return runner.Run(cmd.Context(), accountID)
		},
	}
	cmd.Flags().IntVarP(&runner.limit, "limit", "l", 0, "Show only the last N transactions (0 shows all)")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context, accountID string) error {
	if accountID == "" {
		id, err := selectAccount(ctx, r.svc, "Account:")
		if err != nil {
			return err
		}
		accountID = id
	}

	account, err := r.svc.Account.Get(ctx, accountID)
	if err != nil {
		return err
	}

	txs, err := r.svc.Transaction.List(ctx, accountID)
	if err != nil {
		return err
	}

	if err := views.NewTransactionListView(r.svc.Currency()).Render(account, txs, r.limit); err != nil {
		return err
	}
	if len(txs) == 0 {
		return nil
	}
	return views.RenderTransactionSummary(r.svc.Transaction.Summarize(accountID), r.svc.Currency())
}

// selectAccount refreshes the account list and asks the user to pick one.
func selectAccount(ctx context.Context, svc *service.Service, message string) (string, error) {
	accounts, err := svc.Account.List(ctx)
	if err != nil {
		return "", err
	}
	return prompts.PromptAccountSelection(message, accounts)
}

// accountName returns the cached name of id, or "" if unknown.
func accountName(ctx context.Context, svc *service.Service, id string) string {
	a, err := svc.Account.Get(ctx, id)
	if err != nil {
		return ""
	}
	return a.Name
}
