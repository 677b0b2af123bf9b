package views

import (
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransactionDetail prints one transaction. accountName may be empty
// when the owning account is not cached.
func RenderTransactionDetail(tx model.Transaction, accountName, currency string) error {
	account := tx.AccountID
	if accountName != "" {
		account = accountName + " (" + tx.AccountID + ")"
	}

	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
		{"Account", account},
		{"Date", tx.Date.Local().Format(constants.DateTimeFormat)},
		{"Type", TypeLabel(tx.Type)},
		{"Amount", utils.FormatAmount(tx.Amount, currency)},
		{"Description", tx.Description},
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
