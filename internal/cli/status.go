package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account and service overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			user, err := apiClient.Auth().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			balance, err := apiClient.Credits().Balance(ctx)
			if err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}

			vpsPage, err := apiClient.VPS().List(ctx, client.ListOptions{Limit: 1})
			if err != nil {
				return fmt.Errorf("failed to list instances: %w", err)
			}
			hostingPage, err := apiClient.Hosting().List(ctx, client.ListOptions{Limit: 1})
			if err != nil {
				return fmt.Errorf("failed to list sites: %w", err)
			}

			fmt.Printf("Account:  %s\n", user.Email)
			fmt.Printf("Balance:  %s\n", formatIDR(balance))
			fmt.Printf("VPS:      %d\n", vpsPage.TotalItems)
			fmt.Printf("Hosting:  %d\n", hostingPage.TotalItems)
			return nil
		},
	}
}
