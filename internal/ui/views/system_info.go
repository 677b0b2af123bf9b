package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	BaseURL         string
	Reachable       bool
	LastError       string
	DefaultCurrency string
	LogLevel        string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	status := pterm.Green("Reachable")
	if !data.Reachable {
		status = pterm.Red("Unreachable")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Ledger Service", data.BaseURL},
		{"Service Status", status},
		{"Last Error", data.LastError},
		{"Default Currency", data.DefaultCurrency},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
