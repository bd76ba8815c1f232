package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newCreditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credit",
		Short: "Manage your credit balance",
	}

	cmd.AddCommand(newCreditBalanceCmd())
	cmd.AddCommand(newCreditTopupCmd())
	cmd.AddCommand(newCreditTransactionsCmd())
	cmd.AddCommand(newCreditCancelCmd())

	return cmd
}

func newCreditBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := apiClient.Credits().Balance(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(map[string]int64{"balance_idr": balance})
			}

			fmt.Printf("Balance: %s\n", formatIDR(balance))
			return nil
		},
	}
}

func newCreditTopupCmd() *cobra.Command {
	var amount int64
	var method string

	cmd := &cobra.Command{
		Use:   "topup",
		Short: "Record a top-up for admin settlement",
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := apiClient.Credits().TopUp(context.Background(), client.TopUpRequest{
				AmountIDR: amount,
				Method:    method,
			})
			if err != nil {
				return fmt.Errorf("topup failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(tx)
			}

			fmt.Printf("Top-up %d for %s recorded, status %s\n", tx.ID, formatIDR(tx.AmountIDR), tx.Status)
			fmt.Println("The balance moves once an admin settles the payment")
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in IDR")
	cmd.Flags().StringVar(&method, "method", "", "payment method (bank_transfer, qris, ...)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}

func newCreditTransactionsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List your credit ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Credits().Transactions(context.Background(), client.TransactionListOptions{
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "TYPE", "AMOUNT", "METHOD", "STATUS", "DATE")
			for _, tx := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", tx.ID),
					tx.Type,
					formatIDR(tx.AmountIDR),
					tx.Method,
					formatStatus(tx.Status),
					tx.CreatedAt.Format("2006-01-02"),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d transactions\n", len(page.Data), page.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newCreditCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Withdraw a pending top-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Credits().Cancel(context.Background(), id); err != nil {
				return fmt.Errorf("cancel failed: %w", err)
			}
			fmt.Printf("Transaction %d cancelled\n", id)
			return nil
		},
	}
}
