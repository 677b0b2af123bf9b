package views

import (
	"github.com/hance08/ledger/internal/service"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionSummary(sum service.Summary, currency string) error {
	pterm.DefaultSection.Println("Transaction Summary")

	net := utils.FormatSigned(sum.Net(), currency)
	if sum.Net().IsNegative() {
		net = pterm.Red(net)
	} else {
		net = pterm.Green(net)
	}

	tableData := pterm.TableData{
		{"Transactions", pterm.Sprint(sum.Count)},
		{"Credits", utils.FormatAmount(sum.Credits, currency)},
		{"Debits", utils.FormatAmount(sum.Debits, currency)},
		{"Net", net},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
