package prompts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/model"
	"github.com/hance08/ledger/internal/validation"
	"github.com/shopspring/decimal"
)

type TransactionFormResult struct {
	AccountID   string
	Description string
	Amount      decimal.Decimal
	Type        model.TransactionType
	Date        time.Time
}

// PromptAccountSelection lets the user pick one of accounts.
func PromptAccountSelection(message string, accounts []model.Account) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available, create one first")
	}

	opts := make([]huh.Option[string], 0, len(accounts))
	for _, a := range accounts {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, a.ID), a.ID))
	}

	selected := accounts[0].ID
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	return selected, err
}

// PromptTransaction runs the transaction form prefilled with initial. The
// account must already be chosen; it is not editable here.
func PromptTransaction(title string, initial model.Transaction) (TransactionFormResult, error) {
	description := initial.Description
	txType := initial.Type
	amount := ""
	if initial.Amount.IsPositive() {
		amount = initial.Amount.String()
	}
	date := ""
	if !initial.Date.IsZero() {
		date = initial.Date.Local().Format(constants.DateFormat)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description:").
				Value(&description).
				Validate(stringValidator(validation.ValidateDescription)),
			huh.NewInput().
				Title("Amount:").
				Value(&amount).
				Validate(stringValidator(validation.ValidateAmount)),
			huh.NewSelect[model.TransactionType]().
				Title("Type:").
				Options(
					huh.NewOption("credit (money in)", model.TypeCredit),
					huh.NewOption("debit (money out)", model.TypeDebit),
				).
				Value(&txType),
			huh.NewInput().
				Title("Date:").
				Description("YYYY-MM-DD, press Enter for today").
				Value(&date).
				Validate(stringValidator(validation.ValidateDate)),
		).Title(title),
	)
	if err := form.Run(); err != nil {
		return TransactionFormResult{}, err
	}

	parsedAmount, err := validation.ParseAmount(amount)
	if err != nil {
		return TransactionFormResult{}, err
	}
	parsedDate, err := validation.ParseDate(date, time.Now())
	if err != nil {
		return TransactionFormResult{}, err
	}
	return TransactionFormResult{
		AccountID:   initial.AccountID,
		Description: description,
		Amount:      parsedAmount,
		Type:        txType,
		Date:        parsedDate,
	}, nil
}
