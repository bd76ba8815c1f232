package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDomainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Check domain availability",
	}

	cmd.AddCommand(newDomainCheckCmd())
	cmd.AddCommand(newDomainSearchCmd())

	return cmd
}

func newDomainCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain>",
		Short: "Check one fully qualified domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Domains().Check(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			if result.Available {
				fmt.Printf("%s is available for %s/year\n", result.Domain, formatIDR(result.YearlyPriceIDR))
			} else {
				fmt.Printf("%s is taken\n", result.Domain)
			}
			return nil
		},
	}
}

func newDomainSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Check a name across every sold TLD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			results, err := apiClient.Domains().CheckAll(context.Background(), name)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(results)
			}

			t := NewTable("DOMAIN", "AVAILABLE", "YEARLY")
			for _, r := range results {
				price := "-"
				if r.Available {
					price = formatIDR(r.YearlyPriceIDR)
				}
				t.AddRow(r.Domain, fmt.Sprintf("%t", r.Available), price)
			}
			t.Render()
			return nil
		},
	}
}
