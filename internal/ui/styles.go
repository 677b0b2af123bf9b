package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintL2Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// Separator prints a horizontal rule between output blocks.
func Separator() {
	pterm.Println(pterm.Gray("---------------------------------------------------------"))
}

// Label renders a table key.
func Label(s string) string {
	return pterm.Blue(s)
}
