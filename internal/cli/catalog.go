package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the sales catalog",
	}

	cmd.AddCommand(newCatalogLocationsCmd())
	cmd.AddCommand(newCatalogVPSPlansCmd())
	cmd.AddCommand(newCatalogHostingPlansCmd())
	cmd.AddCommand(newCatalogEnginesCmd())
	cmd.AddCommand(newCatalogTLDsCmd())

	return cmd
}

func newCatalogLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List deployment locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := apiClient.Catalog().Locations(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch locations: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(locations)
			}

			t := NewTable("ID", "NAME", "CITY", "COUNTRY")
			for _, l := range locations {
				t.AddRow(l.ID, l.Name, l.City, l.Country)
			}
			t.Render()
			return nil
		},
	}
}

func newCatalogVPSPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vps-plans",
		Short: "List VPS plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := apiClient.Catalog().VPSPlans(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch plans: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(plans)
			}

			t := NewTable("ID", "NAME", "CPU", "MEMORY", "STORAGE", "MONTHLY")
			for _, p := range plans {
				t.AddRow(
					p.ID, p.Name,
					fmt.Sprintf("%d", p.CPU),
					fmt.Sprintf("%d GB", p.MemoryGB),
					fmt.Sprintf("%d GB", p.StorageGB),
					formatIDR(p.MonthlyPriceIDR),
				)
			}
			t.Render()
			fmt.Println("\nYearly billing: pay 10 months, get 12")
			return nil
		},
	}
}

func newCatalogHostingPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hosting-plans",
		Short: "List managed hosting plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := apiClient.Catalog().HostingPlans(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch plans: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(plans)
			}

			t := NewTable("ID", "NAME", "STORAGE", "SUBDOMAINS", "MONTHLY")
			for _, p := range plans {
				t.AddRow(
					p.ID, p.Name,
					fmt.Sprintf("%d GB", p.StorageGB),
					fmt.Sprintf("%d", p.SubdomainLimit),
					formatIDR(p.MonthlyPriceIDR),
				)
			}
			t.Render()
			return nil
		},
	}
}

func newCatalogEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List managed database engines",
		RunE: func(cmd *cobra.Command, args []string) error {
			engines, err := apiClient.Catalog().DatabaseEngines(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch engines: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(engines)
			}

			t := NewTable("ID", "NAME", "VERSIONS")
			for _, e := range engines {
				t.AddRow(e.ID, e.Name, strings.Join(e.Versions, ", "))
			}
			t.Render()
			return nil
		},
	}
}

func newCatalogTLDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tlds",
		Short: "List domain TLD prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := apiClient.Catalog().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch catalog: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(catalog.TLDPrices)
			}

			t := NewTable("TLD", "YEARLY")
			for _, p := range catalog.TLDPrices {
				t.AddRow("."+p.TLD, formatIDR(p.YearlyPriceIDR))
			}
			t.Render()
			return nil
		},
	}
}
