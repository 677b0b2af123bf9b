package transaction

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc: a.Service,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}
}

func (r *ShowCommandRunner) Run(ctx context.Context, id string) error {
	tx, err := r.svc.Transaction.Get(ctx, id)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(tx, accountName(ctx, r.svc, tx.AccountID), r.svc.Currency())
}
