package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type EditCommandRunner struct {
	svc *service.Service
	now func() time.Time

	account     string
	description string
	amount      string
	txType      string
	date        string
}

func NewEditCmd(a *app.App) *cobra.Command {
	runner := &EditCommandRunner{now: time.Now}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction. Only the given flags are changed; without flags an
interactive form prefilled with the current values is shown. A transaction
can't be moved to another account.`,
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
	fs.StringVarP(&r.account, "account", "a", "", "Account ID (must match the current one)")
	fs.StringVarP(&r.description, "description", "d", "", "New description")
	fs.StringVarP(&r.amount, "amount", "m", "", "New amount")
	fs.StringVarP(&r.txType, "type", "t", "", "New type: credit or debit")
	fs.StringVar(&r.date, "date", "", "New date as YYYY-MM-DD")
}

// Update collects the changed flags. ok is false when no flag was given.
func (r *EditCommandRunner) Update(flags *pflag.FlagSet) (upd service.TransactionUpdate, ok bool, err error) {
	if flags.Changed("account") {
		upd.AccountID = &r.account
		ok = true
	}
	if flags.Changed("description") {
		if err := validation.ValidateDescription(r.description); err != nil {
			return upd, false, err
		}
		upd.Description = &r.description
		ok = true
	}
	if flags.Changed("amount") {
		amount, err := validation.ParseAmount(r.amount)
		if err != nil {
			return upd, false, fmt.Errorf("invalid amount: %w", err)
		}
		upd.Amount = &amount
		ok = true
	}
	if flags.Changed("type") {
		tt, err := validation.ParseType(r.txType)
		if err != nil {
			return upd, false, err
		}
		upd.Type = &tt
		ok = true
	}
	if flags.Changed("date") {
		d, err := validation.ParseDate(r.date, r.now())
		if err != nil {
			return upd, false, err
		}
		upd.Date = &d
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
		current, err := r.svc.Transaction.Get(ctx, id)
		if err != nil {
			return err
		}
		res, err := prompts.PromptTransaction(fmt.Sprintf("Edit Transaction #%s", id), current)
		if err != nil {
			return err
		}
		upd = service.TransactionUpdate{
			Description: &res.Description,
			Amount:      &res.Amount,
			Type:        &res.Type,
			Date:        &res.Date,
		}
	}

	updated, err := r.svc.Transaction.Update(ctx, id, upd)
	if err != nil {
		return err
	}

	if err := views.RenderTransactionDetail(updated, accountName(ctx, r.svc, updated.AccountID), r.svc.Currency()); err != nil {
		return err
	}
	pterm.Success.Printf("Transaction #%s updated successfully\n", id)
	return nil
}
