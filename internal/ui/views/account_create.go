package views

import (
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

// RenderAccountSummary shows an account about to be sent, before the user
// confirms it.
func RenderAccountSummary(a model.Account, currency string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{ui.Label("Name"), a.Name},
		{ui.Label("Status"), StatusLabel(a.Status)},
		{ui.Label("Balance"), utils.FormatAmount(a.Balance, currency)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}

func RenderAccountSuccess(a model.Account, verb string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{ui.Label("Account ID"), a.ID},
		{ui.Label("Name"), a.Name},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Account %s successfully!\n", verb)
	return nil
}
