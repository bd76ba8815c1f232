package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newDatabaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "database",
		Aliases: []string{"db"},
		Short:   "Manage managed databases",
	}

	cmd.AddCommand(newDatabaseListCmd())
	cmd.AddCommand(newDatabaseGetCmd())
	cmd.AddCommand(newDatabaseDeployCmd())
	cmd.AddCommand(newDatabaseDeleteCmd())

	return cmd
}

func newDatabaseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your managed databases",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Databases().List(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list databases: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "NAME", "ENGINE", "VERSION", "PLAN", "STATUS")
			for _, inst := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", inst.ID),
					truncate(inst.Name, 25),
					inst.EngineID,
					inst.Version,
					inst.PlanID,
					formatStatus(inst.Status),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d databases\n", len(page.Data), page.TotalItems)
			return nil
		},
	}
}

func newDatabaseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get managed database details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			inst, err := apiClient.Databases().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get database: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(inst)
			}

			fmt.Printf("ID:       %d\n", inst.ID)
			fmt.Printf("Name:     %s\n", inst.Name)
			fmt.Printf("Engine:   %s %s\n", inst.EngineID, inst.Version)
			fmt.Printf("Plan:     %s\n", inst.PlanID)
			fmt.Printf("Database: %s\n", inst.DatabaseName)
			fmt.Printf("User:     %s\n", inst.DatabaseUser)
			fmt.Printf("Status:   %s\n", formatStatus(inst.Status))
			if inst.Host != "" {
				fmt.Printf("Endpoint: %s:%d\n", inst.Host, inst.Port)
			}
			return nil
		},
	}
}

func newDatabaseDeployCmd() *cobra.Command {
	var req client.DatabaseDeployRequest

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Order a new managed database",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.Databases().Deploy(context.Background(), req)
			if err != nil {
				return fmt.Errorf("deploy failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			fmt.Printf("Database %d (%s %s) ordered, status %s\n",
				result.Instance.ID, result.Instance.EngineID, result.Instance.Version, result.Instance.Status)
			fmt.Printf("Order %d charged %s\n", result.Order.ID, formatIDR(result.Order.TotalIDR))
			if result.Instance.Password != "" {
				fmt.Printf("Database password (shown once): %s\n", result.Instance.Password)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "instance name")
	cmd.Flags().StringVar(&req.EngineID, "engine", "", "engine id (see 'catalog engines')")
	cmd.Flags().StringVar(&req.Version, "version", "", "engine version (engine default if empty)")
	cmd.Flags().StringVar(&req.PlanID, "plan", "", "plan id")
	cmd.Flags().StringVar(&req.LocationID, "location", "", "location id")
	cmd.Flags().StringVar(&req.DatabaseName, "db-name", "", "initial database name")
	cmd.Flags().StringVar(&req.DatabaseUser, "db-user", "", "initial database user")
	cmd.Flags().StringVar(&req.Password, "password", "", "database password (generated if empty)")
	cmd.Flags().StringVar(&req.BillingCycle, "cycle", "monthly", "billing cycle: monthly or yearly")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("engine")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("db-name")
	_ = cmd.MarkFlagRequired("db-user")

	return cmd
}

func newDatabaseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a managed database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Databases().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Database %d removed\n", id)
			return nil
		},
	}
}
