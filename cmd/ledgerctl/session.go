package main

import (
	"fmt"

	"campus-ledger/internal/adapter/http/dto"
	"campus-ledger/internal/app"
	"campus-ledger/internal/core/domain"

	"github.com/spf13/cobra"
)

func newModeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [demo|live]",
		Short: "Show or switch the ledger mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, args []string) error {
			if len(args) == 1 {
				mode, ok := domain.ParseMode(args[0])
				if !ok {
					return fmt.Errorf("unknown mode %q", args[0])
				}
				if err := a.Modes.SetMode(cmd.Context(), mode); err != nil {
					return err
				}
			}
			mode := a.Modes.Mode()
			return writeOutput(cmd, opts, dto.NewModeResponse(mode), string(mode))
		}),
	}
}

func newConnectCmd(opts *globalOptions) *cobra.Command {
	var silent bool
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect the StarkNet wallet and switch to live mode",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			session, err := a.Connection.Connect(cmd.Context(), silent)
			if err != nil {
				return err
			}
			resp := dto.NewSessionResponse(session)
			text := "no wallet authorized"
			if resp.Connected {
				text = "connected " + resp.ShortAddress
			}
			return writeOutput(cmd, opts, resp, text)
		}),
	}
	cmd.Flags().BoolVar(&silent, "silent", false, "only reuse an already authorized account")
	return cmd
}

func newDisconnectCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect the wallet",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			a.Connection.Disconnect(cmd.Context())
			return writeOutput(cmd, opts, dto.NewSessionResponse(nil), "disconnected")
		}),
	}
}
