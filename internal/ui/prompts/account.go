package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountFormResult struct {
	Name    string
	Status  model.AccountStatus
	Balance decimal.Decimal
}

func statusOptions() []huh.Option[model.AccountStatus] {
	opts := make([]huh.Option[model.AccountStatus], 0, len(model.AccountStatuses))
	for _, st := range model.AccountStatuses {
		opts = append(opts, huh.NewOption(st.String(), st))
	}
	return opts
}

// PromptAccount runs the account form prefilled with initial.
func PromptAccount(title string, initial model.Account) (AccountFormResult, error) {
	name := initial.Name
	status := initial.Status
	balance := ""
	if initial.IsPersisted() || !initial.Balance.IsZero() {
		balance = initial.Balance.String()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account Name:").
				Value(&name).
				Validate(stringValidator(validation.ValidateAccountName)),
			huh.NewSelect[model.AccountStatus]().
				Title("Status:").
				Options(statusOptions()...).
				Value(&status),
			huh.NewInput().
				Title("Balance (press Enter for 0):").
				Value(&balance).
				Validate(stringValidator(validation.ValidateBalance)),
		).Title(title),
	)
	if err := form.Run(); err != nil {
		return AccountFormResult{}, err
	}

	parsed, err := validation.ParseBalance(balance)
	if err != nil {
		return AccountFormResult{}, err
	}
	return AccountFormResult{Name: name, Status: status, Balance: parsed}, nil
}
