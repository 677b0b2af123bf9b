package views

import (
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/ui"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

func RenderAccountDetail(a model.Account, sum service.Summary, currency string) error {
	pterm.Println()
	ui.PrintL2Title("Account Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", a.ID},
		{"Name", a.Name},
		{"Status", StatusLabel(a.Status)},
		{"Balance", utils.FormatAmount(a.Balance, currency)},
		{"Last Updated", a.LastUpdated.Local().Format(constants.DateTimeFormat)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	return RenderTransactionSummary(sum, currency)
}

// RenderOverview prints the totals across all accounts.
func RenderOverview(o service.Overview, currency string) error {
	ui.PrintL1Title("Overview")

	bars := make([]pterm.Bar, 0, len(model.AccountStatuses))
	for _, st := range model.AccountStatuses {
		bars = append(bars, pterm.Bar{Label: st.String(), Value: o.ByStatus[st]})
	}

	tableData := pterm.TableData{
		{ui.Label("Accounts"), pterm.Sprint(o.AccountCount)},
		{ui.Label("Active"), pterm.Sprint(o.ActiveCount())},
		{ui.Label("Total Balance"), utils.FormatAmount(o.TotalBalance, currency)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}
	if o.AccountCount == 0 {
		return nil
	}
	return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
}
