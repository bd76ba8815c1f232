package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newHostingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosting",
		Short: "Manage hosting sites",
	}

	cmd.AddCommand(newHostingListCmd())
	cmd.AddCommand(newHostingGetCmd())
	cmd.AddCommand(newHostingDeployCmd())
	cmd.AddCommand(newHostingSubdomainsCmd())
	cmd.AddCommand(newHostingDeleteCmd())

	return cmd
}

func newHostingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your hosting sites",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Hosting().List(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list sites: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "DOMAIN", "PLAN", "SUBDOMAINS", "STATUS")
			for _, site := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", site.ID),
					truncate(site.DomainName, 35),
					site.PlanID,
					fmt.Sprintf("%d", len(site.Subdomains)),
					formatStatus(site.Status),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d sites\n", len(page.Data), page.TotalItems)
			return nil
		},
	}
}

func newHostingGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get hosting site details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			site, err := apiClient.Hosting().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get site: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(site)
			}

			fmt.Printf("ID:         %d\n", site.ID)
			fmt.Printf("Domain:     %s\n", site.DomainName)
			fmt.Printf("Plan:       %s\n", site.PlanID)
			fmt.Printf("Location:   %s\n", site.LocationID)
			fmt.Printf("Status:     %s\n", formatStatus(site.Status))
			if len(site.Subdomains) > 0 {
				fmt.Printf("Subdomains: %s\n", strings.Join(site.Subdomains, ", "))
			}
			if site.URL != "" {
				fmt.Printf("URL:        %s\n", site.URL)
			}
			return nil
		},
	}
}

func newHostingDeployCmd() *cobra.Command {
	var req client.HostingDeployRequest
	var subdomains string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Order a new hosting site",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subdomains != "" {
				req.Subdomains = strings.Split(subdomains, ",")
			}

			result, err := apiClient.Hosting().Deploy(context.Background(), req)
			if err != nil {
				return fmt.Errorf("deploy failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			fmt.Printf("Site %d (%s) ordered, status %s\n",
				result.Instance.ID, result.Instance.DomainName, result.Instance.Status)
			fmt.Printf("Order %d charged %s\n", result.Order.ID, formatIDR(result.Order.TotalIDR))
			if result.Instance.AdminPassword != "" {
				fmt.Printf("Admin password (shown once): %s\n", result.Instance.AdminPassword)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.DomainName, "domain", "", "site domain name")
	cmd.Flags().StringVar(&req.PlanID, "plan", "", "plan id (see 'catalog hosting-plans')")
	cmd.Flags().StringVar(&req.LocationID, "location", "", "location id")
	cmd.Flags().StringVar(&subdomains, "subdomains", "", "comma separated subdomains")
	cmd.Flags().StringVar(&req.AdminEmail, "admin-email", "", "control panel admin email")
	cmd.Flags().StringVar(&req.AdminPassword, "admin-password", "", "control panel password (generated if empty)")
	cmd.Flags().StringVar(&req.BillingCycle, "cycle", "monthly", "billing cycle: monthly or yearly")
	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("admin-email")

	return cmd
}

func newHostingSubdomainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subdomains <id> <sub1,sub2,...>",
		Short: "Replace a site's subdomain list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			subs := strings.Split(args[1], ",")
			if err := apiClient.Hosting().SetSubdomains(context.Background(), id, subs); err != nil {
				return fmt.Errorf("update failed: %w", err)
			}
			fmt.Printf("Site %d subdomains updated\n", id)
			return nil
		},
	}
}

func newHostingDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a hosting site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Hosting().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Site %d removed\n", id)
			return nil
		},
	}
}
