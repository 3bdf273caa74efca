package main

import (
	"github.com/JonMunkholm/catalogo/internal/config"
	"github.com/JonMunkholm/catalogo/internal/core/catalogs"
	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect the spreadsheets behind the storefront catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel, "text")
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.AddCommand(listCmd())
	cmd.AddCommand(fetchCmd())
	cmd.AddCommand(priceCmd())
	return cmd
}

// loadConfig reads the environment and applies the sheet overrides to the
// catalog registry.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := catalogs.Configure(cfg.Sheets); err != nil {
		return nil, err
	}
	return cfg, nil
}
