package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/remote"
	"github.com/hance08/ledger/internal/ui/views"
	"github.com/spf13/cobra"
)

const pingTimeout = 5 * time.Second

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, the ledger service address and whether it answers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run(cmd.Context())
		},
	}
}

func (r *infoRunner) Run(ctx context.Context) error {
	configPath := r.app.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	reachable := r.ping(ctx)
	lastErr := "None"
	if err := r.app.Store.LastError(); err != nil {
		lastErr = remote.Describe(err)
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		BaseURL:         r.app.Client.BaseURL(),
		Reachable:       reachable,
		LastError:       lastErr,
		DefaultCurrency: r.app.Config.Defaults.Currency,
		LogLevel:        r.app.Config.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

// ping refreshes the account list through the store, which records the
// outcome in its last-error slot. Any HTTP answer counts as reachable.
func (r *infoRunner) ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := r.app.Store.RefreshAccounts(ctx)
	return !errors.Is(err, remote.ErrTransport) && !errors.Is(err, remote.ErrInvalidResponse)
}

func getAppDataDirOrUnknown() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
