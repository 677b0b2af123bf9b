package views

import (
	"sort"
	"time"

	"github.com/hance08/ledger/internal/remote"
	"github.com/hance08/ledger/internal/service"
	"github.com/pterm/pterm"
)

func RenderSyncReport(r service.SyncReport) error {
	tableData := pterm.TableData{
		{"Accounts", pterm.Sprint(r.Accounts)},
		{"Transactions", pterm.Sprint(r.Transactions)},
		{"Duration", r.Duration.Round(time.Millisecond).String()},
	}
	if r.LastError != nil {
		tableData = append(tableData, []string{"Last Error", remote.Describe(r.LastError)})
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if r.OK() {
		pterm.Success.Println("Everything is up to date")
		return nil
	}

	ids := make([]string, 0, len(r.Failures))
	for id := range r.Failures {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	failures := pterm.TableData{{"Account", "Error"}}
	for _, id := range ids {
		failures = append(failures, []string{id, remote.Describe(r.Failures[id])})
	}
	pterm.Warning.Printf("%d account(s) could not be refreshed\n", len(ids))
	return pterm.DefaultTable.WithHasHeader().WithData(failures).Render()
}
