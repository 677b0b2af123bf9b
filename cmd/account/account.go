package account

import (
	"github.com/hance08/ledger/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, edit, delete and list accounts.",
		Long:  `Create, edit, delete and list the accounts stored by the ledger service.`,
	}

	accountCmd.AddCommand(NewListCmd(a))
	accountCmd.AddCommand(NewShowCmd(a))
	accountCmd.AddCommand(NewCreateCmd(a))
	accountCmd.AddCommand(NewEditCmd(a))
	accountCmd.AddCommand(NewDeleteCmd(a))

	return accountCmd
}
