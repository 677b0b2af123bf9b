package account

import (
	"context"
	"fmt"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// CreateCommandRunner manages the state and logic for creating an account.
type CreateCommandRunner struct {
	svc *service.Service

	name    string
	status  string
	balance string
	yes     bool
}

func NewCreateCmd(a *app.App) *cobra.Command {
	runner := &CreateCommandRunner{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account on the ledger service.

Without flags an interactive form asks for every field.

Example: ledger account create -n Operations -s active -b 1250000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.svc = a.Service

			hasFlags := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("status") ||
				cmd.Flags().Changed("balance")
			if hasFlags {
				return runner.FlagsMode(cmd.Context())
			}
			return runner.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&runner.name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&runner.status, "status", "s", model.StatusActive.String(), "Status: active, inactive or pending")
	cmd.Flags().StringVarP(&runner.balance, "balance", "b", "0", "Initial balance")
	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation in interactive mode")

	return cmd
}

// Input turns the flags into a service input.
func (r *CreateCommandRunner) Input() (service.AccountInput, error) {
	if err := validation.ValidateAccountName(r.name); err != nil {
		return service.AccountInput{}, fmt.Errorf("invalid account name: %w", err)
	}
	status, err := validation.ParseStatus(r.status)
	if err != nil {
		return service.AccountInput{}, err
	}
	balance, err := validation.ParseBalance(r.balance)
	if err != nil {
		return service.AccountInput{}, fmt.Errorf("invalid balance: %w", err)
	}
	return service.AccountInput{Name: r.name, Status: status, Balance: balance}, nil
}

func (r *CreateCommandRunner) FlagsMode(ctx context.Context) error {
	in, err := r.Input()
	if err != nil {
		return err
	}
	return r.save(ctx, in)
}

func (r *CreateCommandRunner) InteractiveMode(ctx context.Context) error {
	res, err := prompts.PromptAccount("New Account", model.Account{})
	if err != nil {
		return err
	}
	in := service.AccountInput{Name: res.Name, Status: res.Status, Balance: res.Balance}

	draft := model.Account{Name: in.Name, Status: in.Status, Balance: in.Balance}
	if err := views.RenderAccountSummary(draft, r.svc.Currency()); err != nil {
		return err
	}

	if !r.yes {
		ok, err := prompts.PromptConfirm("Create this account?", true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Creation cancelled")
			return nil
		}
	}
	return r.save(ctx, in)
}

func (r *CreateCommandRunner) save(ctx context.Context, in service.AccountInput) error {
	created, err := r.svc.Account.Create(ctx, in)
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(created, "created")
}
