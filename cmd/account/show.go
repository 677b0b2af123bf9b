package account

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show account details and a summary of its transactions",
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
	account, err := r.svc.Account.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := r.svc.Transaction.List(ctx, id); err != nil {
		pterm.Warning.Printf("Could not load transactions: %v\n", err)
	}

	return views.RenderAccountDetail(account, r.svc.Transaction.Summarize(id), r.svc.Currency())
}
