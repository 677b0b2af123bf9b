package views

import (
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

func TypeLabel(t model.TransactionType) string {
	if t == model.TypeDebit {
		return pterm.Red(t.String())
	}
	return pterm.Green(t.String())
}

type TransactionListView struct {
	currency string
}

func NewTransactionListView(currency string) *TransactionListView {
	return &TransactionListView{currency: currency}
}

// Render lists the transactions of account, newest rows last as the backend
// returned them. limit <= 0 shows everything.
func (v *TransactionListView) Render(account model.Account, txs []model.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Printf("No transactions found for account %s (%s)\n", account.Name, account.ID)
		return nil
	}

	shown := txs
	if limit > 0 && len(txs) > limit {
		shown = txs[len(txs)-limit:]
		pterm.DefaultSection.Printf("%s: last %d of %d transactions", account.Name, limit, len(txs))
	} else {
		pterm.DefaultSection.Printf("%s: transactions", account.Name)
	}

	tableData := pterm.TableData{{"ID", "Date", "Type", "Description", "Amount"}}
	for _, tx := range shown {
		amount := utils.FormatSigned(tx.Signed(), v.currency)
		if tx.Type == model.TypeDebit {
			amount = pterm.Red(amount)
		} else {
			amount = pterm.Green(amount)
		}
		tableData = append(tableData, []string{
			tx.ID,
			tx.Date.Local().Format(constants.DateFormat),
			TypeLabel(tx.Type),
			tx.Description,
			amount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
