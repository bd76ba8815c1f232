package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newAutomationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "automation",
		Aliases: []string{"n8n"},
		Short:   "Manage n8n automation instances",
	}

	cmd.AddCommand(newAutomationListCmd())
	cmd.AddCommand(newAutomationGetCmd())
	cmd.AddCommand(newAutomationDeployCmd())
	cmd.AddCommand(newAutomationDeleteCmd())

	return cmd
}

func newAutomationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your n8n instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Automation().List(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list instances: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "NAME", "SUBDOMAIN", "PLAN", "STATUS")
			for _, inst := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", inst.ID),
					truncate(inst.Name, 25),
					inst.Subdomain,
					inst.PlanID,
					formatStatus(inst.Status),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d instances\n", len(page.Data), page.TotalItems)
			return nil
		},
	}
}

func newAutomationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get n8n instance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			inst, err := apiClient.Automation().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get instance: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(inst)
			}

			fmt.Printf("ID:        %d\n", inst.ID)
			fmt.Printf("Name:      %s\n", inst.Name)
			fmt.Printf("Subdomain: %s\n", inst.Subdomain)
			fmt.Printf("Plan:      %s\n", inst.PlanID)
			fmt.Printf("Status:    %s\n", formatStatus(inst.Status))
			if inst.URL != "" {
				fmt.Printf("URL:       %s\n", inst.URL)
			}
			return nil
		},
	}
}

func newAutomationDeployCmd() *cobra.Command {
	var req client.AutomationDeployRequest

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Order a new n8n instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Automation().Deploy(context.Background(), req)
			if err != nil {
				return fmt.Errorf("deploy failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			fmt.Printf("Instance %d (%s) ordered, status %s\n",
				result.Instance.ID, result.Instance.Name, result.Instance.Status)
			fmt.Printf("Order %d charged %s\n", result.Order.ID, formatIDR(result.Order.TotalIDR))
			if result.Instance.AdminPassword != "" {
				fmt.Printf("Admin password (shown once): %s\n", result.Instance.AdminPassword)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "instance name")
	cmd.Flags().StringVar(&req.Subdomain, "subdomain", "", "instance subdomain")
	cmd.Flags().StringVar(&req.PlanID, "plan", "", "plan id")
	cmd.Flags().StringVar(&req.LocationID, "location", "", "location id")
	cmd.Flags().StringVar(&req.AdminEmail, "admin-email", "", "n8n admin email")
	cmd.Flags().StringVar(&req.AdminPassword, "admin-password", "", "n8n admin password (generated if empty)")
	cmd.Flags().StringVar(&req.BillingCycle, "cycle", "monthly", "billing cycle: monthly or yearly")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("subdomain")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("admin-email")

	return cmd
}

func newAutomationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an n8n instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Automation().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Instance %d removed\n", id)
			return nil
		},
	}
}
