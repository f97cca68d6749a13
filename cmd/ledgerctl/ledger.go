package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-ledger/internal/adapter/http/dto"
	"campus-ledger/internal/app"
	"campus-ledger/internal/core/domain"

	"github.com/spf13/cobra"
)

const pointsSymbol = "CPT"

func newBalanceCmd(opts *globalOptions) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the points balance",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			balance, err := a.Ledger.GetBalance(cmd.Context(), address)
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts,
				dto.BalanceResponse{Address: address, Balance: balance, Symbol: pointsSymbol},
				fmt.Sprintf("%s %s", balance, pointsSymbol))
		}),
	}
	cmd.Flags().StringVar(&address, "address", "", "account address (default: connected wallet)")
	return cmd
}

func newCheckInCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-in",
		Short: "Claim the daily check-in reward",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			txHash, err := a.Ledger.CheckIn(cmd.Context())
			if err != nil {
				return err
			}
			return writeTx(cmd, opts, a, txHash, "")
		}),
	}
}

func newPurchaseCmd(opts *globalOptions) *cobra.Command {
	var productID, amount string
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Pay the campus store by product or by amount",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			var (
				txHash string
				err    error
			)
			if productID != "" {
				txHash, err = a.Ledger.PurchaseProduct(cmd.Context(), productID)
			} else {
				txHash, err = a.Ledger.Purchase(cmd.Context(), amount)
			}
			if err != nil {
				return err
			}
			return writeTx(cmd, opts, a, txHash, "")
		}),
	}
	cmd.Flags().StringVar(&productID, "product", "", "catalog product ID")
	cmd.Flags().StringVar(&amount, "amount", "", "points amount")
	cmd.MarkFlagsOneRequired("product", "amount")
	cmd.MarkFlagsMutuallyExclusive("product", "amount")
	return cmd
}

func newTransferCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <recipient> <amount>",
		Short: "Send points to another account",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, args []string) error {
			txHash, err := a.Ledger.Transfer(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return writeTx(cmd, opts, a, txHash, "")
		}),
	}
}

func newProductsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the campus store catalog",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			products := dto.NewProductList(a.Ledger.Products())
			var b strings.Builder
			for _, p := range products {
				fmt.Fprintf(&b, "%s\t%s %s\t%s %s\n", p.ID, p.Icon, p.Name, p.Price, pointsSymbol)
			}
			return writeOutput(cmd, opts, products, strings.TrimRight(b.String(), "\n"))
		}),
	}
}

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent ledger activity",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, a *app.App, _ []string) error {
			k, ok := domain.ParseTransactionKind(kind)
			if !ok {
				return errors.New("--type must be one of all, reward, spend")
			}
			entries, err := a.Ledger.History(cmd.Context(), k)
			if err != nil {
				return err
			}
			list := dto.NewTransactionList(entries, a.Ledger.ExplorerTxURL)
			if len(entries) == 0 {
				return writeOutput(cmd, opts, list, "no transactions")
			}
			var b strings.Builder
			for _, e := range entries {
				sign := "+"
				if e.Kind == domain.TransactionKindSpend {
					sign = "-"
				}
				ts := time.UnixMilli(e.Timestamp).Format(time.DateTime)
				fmt.Fprintf(&b, "%s\t%s%s %s\t%s\t%s\n", ts, sign, e.Amount, pointsSymbol, e.Description, e.TxHash)
			}
			return writeOutput(cmd, opts, list, strings.TrimRight(b.String(), "\n"))
		}),
	}
	cmd.Flags().StringVar(&kind, "type", "all", "filter: all, reward or spend")
	return cmd
}

func writeTx(cmd *cobra.Command, opts *globalOptions, a *app.App, txHash, tokenID string) error {
	resp := dto.TxResponse{TxHash: txHash, ExplorerURL: a.Ledger.ExplorerTxURL(txHash), TokenID: tokenID}
	text := fmt.Sprintf("tx %s\n%s", resp.TxHash, resp.ExplorerURL)
	if tokenID != "" {
		text = fmt.Sprintf("token %s\n%s", tokenID, text)
	}
	return writeOutput(cmd, opts, resp, text)
}
