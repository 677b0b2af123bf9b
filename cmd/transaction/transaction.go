package transaction

import (
	"github.com/hance08/ledger/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(a *app.App) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: list them per account, view details, add, edit or delete them.",
	}

	transactionCmd.AddCommand(NewListCmd(a))
	transactionCmd.AddCommand(NewShowCmd(a))
	transactionCmd.AddCommand(NewAddCmd(a))
	transactionCmd.AddCommand(NewEditCmd(a))
	transactionCmd.AddCommand(NewDeleteCmd(a))

	return transactionCmd
}
