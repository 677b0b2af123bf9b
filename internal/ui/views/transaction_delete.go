package views

import (
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(tx model.Transaction, currency string) error {
	pterm.Warning.Printf("About to delete transaction #%s:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", tx.Date.Local().Format(constants.DateFormat)},
		{"Description", tx.Description},
		{"Amount", utils.FormatSigned(tx.Signed(), currency)},
	}
	return pterm.DefaultTable.WithData(deletionInfo).Render()
}

func RenderAccountDeletePreview(a model.Account, currency string) error {
	pterm.Warning.Printf("About to delete account #%s:\n", a.ID)

	deletionInfo := pterm.TableData{
		{"Name", a.Name},
		{"Status", a.Status.String()},
		{"Balance", utils.FormatAmount(a.Balance, currency)},
	}
	return pterm.DefaultTable.WithData(deletionInfo).Render()
}
