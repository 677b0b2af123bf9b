package views

import (
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/utils"
	"github.com/pterm/pterm"
)

// StatusLabel colours an account status: active green, inactive gray,
// pending yellow.
func StatusLabel(s model.AccountStatus) string {
	switch s {
	case model.StatusActive:
		return pterm.Green(s.String())
	case model.StatusInactive:
		return pterm.Gray(s.String())
	case model.StatusPending:
		return pterm.Yellow(s.String())
	default:
		return s.String()
	}
}

type AccountListView struct {
	currency string
}

func NewAccountListView(currency string) *AccountListView {
	return &AccountListView{currency: currency}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Status", "Balance", "Last Updated"}}
	for _, a := range accounts {
		name := a.Name
		if a.Status == model.StatusInactive {
			name = pterm.Gray(name)
		}
		tableData = append(tableData, []string{
			a.ID,
			name,
			StatusLabel(a.Status),
			utils.FormatAmount(a.Balance, v.currency),
			a.LastUpdated.Local().Format(constants.DateTimeFormat),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
