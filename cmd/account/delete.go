package account

import (
	"context"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
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
		Use:   "delete <account-id>",
		Short: "Delete an account",
		Long:  `Delete an account on the ledger service. This action cannot be undone.`,
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
		account, err := r.svc.Account.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := views.RenderAccountDeletePreview(account, r.svc.Currency()); err != nil {
			return err
		}

		pterm.Warning.Println("This action cannot be undone!")
		ok, err := prompts.PromptConfirm("Do you want to delete this account?", false)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Account.Delete(ctx, id); err != nil {
		return err
	}

	pterm.Success.Printf("Account #%s deleted successfully\n", id)
	return nil
}
