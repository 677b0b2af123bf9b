package transaction

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type DeleteCommandRunner struct {
	svc *service.Service
	yes bool
}

func NewDeleteCmd(a *app.App) *cobra.Command {
	runner := &DeleteCommandRunner{}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.svc = a.Service
			return runner.Run(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

func (r *DeleteCommandRunner) Run(ctx context.Context, id string) error {
	if !r.yes {
		tx, err := r.svc.Transaction.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := views.RenderTransactionDeletePreview(tx, r.svc.Currency()); err != nil {
			return err
		}

		pterm.Warning.Println("This action cannot be undone!")
		ok, err := prompts.PromptConfirm("Do you want to delete this transaction?", false)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.Delete(ctx, id); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%s deleted successfully\n", id)
	ui.Separator()
	return nil
}
