package account

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc      *service.Service
	overview bool
}

func NewListCmd(a *app.App) *cobra.Command {
	runner := &ListCommandRunner{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.svc = a.Service
			return runner.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&runner.overview, "overview", true, "Show totals after the list")

	return cmd
}

func (r *ListCommandRunner) Run(ctx context.Context) error {
	accounts, err := r.svc.Account.List(ctx)
	if err != nil {
		return err
	}

	if err := views.NewAccountListView(r.svc.Currency()).Render(accounts); err != nil {
		return err
	}
	if !r.overview || len(accounts) == 0 {
		return nil
	}
	return views.RenderOverview(r.svc.Account.Overview(), r.svc.Currency())
}
