package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Browse hosting classes",
	}

	cmd.AddCommand(newClassListCmd())

	return cmd
}

func newClassListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List published classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Classes().List(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list classes: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("SLUG", "TITLE", "LEVEL", "PRICE")
			for _, c := range page.Data {
				price := "free"
				if c.PriceIDR > 0 {
					price = formatIDR(c.PriceIDR)
				}
				t.AddRow(c.Slug, truncate(c.Title, 45), c.Level, price)
			}
			t.Render()
			return nil
		},
	}
}
