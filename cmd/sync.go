package cmd

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type syncRunner struct {
	app *app.App
}

func NewSyncCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh every account and its transactions",
		Long: `Reload the account list from the ledger service, then the transactions
of every account in parallel. Accounts whose transactions fail to load are
listed at the end; the others are still refreshed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &syncRunner{app: a}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *syncRunner) Run(ctx context.Context) error {
	spinner, _ := pterm.DefaultSpinner.Start("Syncing with " + r.app.Client.BaseURL())

	report, err := r.app.Service.Sync(ctx)
	if err != nil {
		spinner.Fail("Sync failed")
		return err
	}
	if report.OK() {
		spinner.Success("Sync complete")
	} else {
		spinner.Warning("Sync finished with errors")
	}

	if err := views.RenderSyncReport(report); err != nil {
		return err
	}
	return views.RenderOverview(r.app.Service.Account.Overview(), r.app.Service.Currency())
}
