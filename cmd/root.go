package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/ledger/cmd/account"
	"github.com/hance08/ledger/cmd/transaction"
	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "ledger is a CLI client for a remote account and transaction ledger",
		Long: `ledger keeps a local view of the accounts and transactions stored by a
ledger service and lets you list, create, edit and delete them from the terminal.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			c, err := application.Load(cfg)
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application))
	rootCmd.AddCommand(NewSyncCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	err := rootCmd.ExecuteContext(ctx)
	cleanup()
	if err != nil {
		if errhandler.IsInterrupt(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}
		pterm.Error.Println(errhandler.Message(err))
		os.Exit(1)
	}
}

func initConfig() error {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("LEDGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	decoded, err := config.Decode(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = decoded
	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".ledger"), nil
	}

	return filepath.Join(configDir, "ledger"), nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	pterm.Info.Printf("Created default config at %s\n", configPath)
	return nil
}
