package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/hance08/ledger/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type AddCommandRunner struct {
	svc *service.Service
	now func() time.Time

	account     string
	description string
	amount      string
	txType      string
	date        string
}

func NewAddCmd(a *app.App) *cobra.Command {
	runner := &AddCommandRunner{now: time.Now}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction to an account",
		Long: `Add a transaction to an account.

Without flags an interactive form asks for every field.

Example: ledger transaction add -a 1 -d "Client Payment" -m 45000.50 -t credit --date 2024-12-30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.svc = a.Service

			hasFlags := cmd.Flags().Changed("account") ||
				cmd.Flags().Changed("description") ||
				cmd.Flags().Changed("amount")
			if hasFlags {
				return runner.FlagsMode(cmd.Context())
			}
			return runner.InteractiveMode(cmd.Context())
		},
	}

	runner.bindFlags(cmd.Flags())

	return cmd
}

func (r *AddCommandRunner) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&r.account, "account", "a", "", "Account ID")
	fs.StringVarP(&r.description, "description", "d", "", "Description")
	fs.StringVarP(&r.amount, "amount", "m", "", "Amount (greater than zero)")
	fs.StringVarP(&r.txType, "type", "t", model.TypeCredit.String(), "Type: credit or debit")
	fs.StringVar(&r.date, "date", "", "Date as YYYY-MM-DD (default today)")
}

// Input turns the flags into a service input.
func (r *AddCommandRunner) Input() (service.TransactionInput, error) {
	if r.account == "" {
		return service.TransactionInput{}, fmt.Errorf("--account is required")
	}
	if err := validation.ValidateDescription(r.description); err != nil {
		return service.TransactionInput{}, err
	}
	amount, err := validation.ParseAmount(r.amount)
	if err != nil {
		return service.TransactionInput{}, fmt.Errorf("invalid amount: %w", err)
	}
	txType, err := validation.ParseType(r.txType)
	if err != nil {
		return service.TransactionInput{}, err
	}
	date, err := validation.ParseDate(r.date, r.now())
	if err != nil {
		return service.TransactionInput{}, err
	}
	return service.TransactionInput{
		AccountID:   r.account,
		Description: r.description,
		Amount:      amount,
		Type:        txType,
		Date:        date,
	}, nil
}

func (r *AddCommandRunner) FlagsMode(ctx context.Context) error {
	in, err := r.Input()
	if err != nil {
		return err
	}
	return r.save(ctx, in)
}

func (r *AddCommandRunner) InteractiveMode(ctx context.Context) error {
	accountID, err := selectAccount(ctx, r.svc, "Account:")
	if err != nil {
		return err
	}

	res, err := prompts.PromptTransaction("New Transaction", model.Transaction{AccountID: accountID})
	if err != nil {
		return err
	}
	return r.save(ctx, service.TransactionInput{
		AccountID:   res.AccountID,
		Description: res.Description,
		Amount:      res.Amount,
		Type:        res.Type,
		Date:        res.Date,
	})
}

func (r *AddCommandRunner) save(ctx context.Context, in service.TransactionInput) error {
	created, err := r.svc.Transaction.Create(ctx, in)
	if err != nil {
		return err
	}

	if err := views.RenderTransactionDetail(created, accountName(ctx, r.svc, created.AccountID), r.svc.Currency()); err != nil {
		return err
	}
	pterm.Success.Printf("Transaction #%s added successfully\n", created.ID)
	return nil
}
