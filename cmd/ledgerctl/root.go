package main

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-ledger/config"
	"campus-ledger/internal/app"
	"campus-ledger/pkg/logger"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	asJSON     bool
	verbose    bool
}

func execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Campus ledger CLI: points, check-ins, purchases and student identity",
		Long:          "ledgerctl drives the campus points ledger from the terminal. In demo mode every call is simulated against local state; in live mode calls go to the StarkNet contracts through the wallet bridge.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at the configured level instead of warn")

	rootCmd.AddCommand(
		newBalanceCmd(opts),
		newCheckInCmd(opts),
		newPurchaseCmd(opts),
		newTransferCmd(opts),
		newProductsCmd(opts),
		newHistoryCmd(opts),
		newIdentityCmd(opts),
		newModeCmd(opts),
		newConnectCmd(opts),
		newDisconnectCmd(opts),
	)

	return rootCmd
}

// withApp builds the ledger for one command invocation. A previously
// connected wallet is restored silently before fn runs.
func withApp(opts *globalOptions, fn func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !opts.verbose {
			cfg.Log.Level = "warn"
		}
		log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
			cmd.SetContext(ctx)
		}

		a, err := app.New(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("init ledger: %w", err)
		}
		defer a.Close()

		a.Connection.AutoReconnect(ctx)
		return fn(cmd, a, args)
	}
}

func writeOutput(cmd *cobra.Command, opts *globalOptions, v interface{}, text string) error {
	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
