package main

import (
	"fmt"
	"strings"

	"campus-ledger/internal/adapter/http/dto"
	"campus-ledger/internal/app"
	"campus-ledger/internal/core/domain"

	"github.com/spf13/cobra"
)

func newIdentityCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the student identity NFT",
	}
	cmd.AddCommand(
		newIdentityStatusCmd(opts),
		newIdentityMintCmd(opts),
		newIdentityInfoCmd(opts),
		newIdentityAvatarsCmd(opts),
	)
	return cmd
}

func newIdentityStatusCmd(opts *globalOptions) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether an account holds a student identity",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			has, err := a.Ledger.HasIdentity(cmd.Context(), address)
			if err != nil {
				return err
			}
			text := "no student identity"
			if has {
				text = "student identity minted"
			}
			return writeOutput(cmd, opts, dto.IdentityStatusResponse{Address: address, HasIdentity: has}, text)
		}),
	}
	cmd.Flags().StringVar(&address, "address", "", "account address (default: connected wallet)")
	return cmd
}

func newIdentityMintCmd(opts *globalOptions) *cobra.Command {
	var meta domain.IdentityMetadata
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint a student identity NFT",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			if meta.AvatarURI == "" {
				meta.AvatarURI = domain.DemoAvatars[0]
			}
			res, err := a.Ledger.MintIdentity(cmd.Context(), meta)
			if err != nil {
				return err
			}
			return writeTx(cmd, opts, a, res.TxHash, res.TokenID)
		}),
	}
	cmd.Flags().StringVar(&meta.StudentName, "name", "", "student name")
	cmd.Flags().StringVar(&meta.StudentID, "student-id", "", "student ID")
	cmd.Flags().StringVar(&meta.AvatarURI, "avatar", "", "avatar image URI")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("student-id")
	return cmd
}

func newIdentityInfoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info [token-id]",
		Short: "Show the metadata of a student identity",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, args []string) error {
			tokenID := domain.DefaultTokenID
			if len(args) == 1 {
				tokenID = args[0]
			}
			meta, err := a.Ledger.GetIdentityInfo(cmd.Context(), tokenID)
			if err != nil {
				return err
			}
			resp := dto.NewIdentityResponse(tokenID, meta)
			text := fmt.Sprintf("token\t%s\nname\t%s\nstudent\t%s\navatar\t%s",
				resp.TokenID, resp.StudentName, resp.StudentID, resp.AvatarURI)
			return writeOutput(cmd, opts, resp, text)
		}),
	}
}

func newIdentityAvatarsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "avatars",
		Short: "List the demo avatar choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeOutput(cmd, opts, domain.DemoAvatars, strings.Join(domain.DemoAvatars, "\n"))
		},
	}
}
