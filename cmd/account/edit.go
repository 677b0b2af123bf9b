package account

import (
	"context"
	"fmt"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type EditCommandRunner struct {
	svc *service.Service

	name    string
	status  string
	balance string
}

func NewEditCmd(a *app.App) *cobra.Command {
	runner := &EditCommandRunner{}

	cmd := &cobra.Command{
		Use:   "edit <account-id>",
		Short: "Edit an account",
		Long: `Edit an account. Only the given flags are changed; without flags an
interactive form prefilled with the current values is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.svc = a.Service
			return runner.Run(cmd.Context(), cmd.Flags(), args[0])
		},
	}

	runner.bindFlags(cmd.Flags())

	return cmd
}

func (r *EditCommandRunner) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&r.name, "name", "n", "", "New account name")
	fs.StringVarP(&r.status, "status", "s", "", "New status: active, inactive or pending")
	fs.StringVarP(&r.balance, "balance", "b", "", "New balance")
}

// Update collects the changed flags. ok is false when no flag was given.
func (r *EditCommandRunner) Update(flags *pflag.FlagSet) (upd service.AccountUpdate, ok bool, err error) {
	if flags.Changed("name") {
		if err := validation.ValidateAccountName(r.name); err != nil {
			return upd, false, fmt.Errorf("invalid account name: %w", err)
		}
		upd.Name = &r.name
		ok = true
	}
	if flags.Changed("status") {
		st, err := validation.ParseStatus(r.status)
		if err != nil {
			return upd, false, err
		}
		upd.Status = &st
		ok = true
	}
	if flags.Changed("balance") {
		b, err := validation.ParseBalance(r.balance)
		if err != nil {
			return upd, false, fmt.Errorf("invalid balance: %w", err)
		}
		upd.Balance = &b
		ok = true
	}
	return upd, ok, nil
}

func (r *EditCommandRunner) Run(ctx context.Context, flags *pflag.FlagSet, id string) error {
	upd, ok, err := r.Update(flags)
	if err != nil {
		return err
	}

	if !ok {
		current, err := r.svc.Account.Get(ctx, id)
		if err != nil {
			return err
		}
		res, err := prompts.PromptAccount(fmt.Sprintf("Edit Account #%s", id), current)
		if err != nil {
			return err
		}
		upd = service.AccountUpdate{Name: &res.Name, Status: &res.Status, Balance: &res.Balance}
	}

	updated, err := r.svc.Account.Update(ctx, id, upd)
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(updated, "updated")
}
