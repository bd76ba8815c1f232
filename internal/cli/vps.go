package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newVPSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vps",
		Short: "Manage VPS instances",
	}

	cmd.AddCommand(newVPSListCmd())
	cmd.AddCommand(newVPSGetCmd())
	cmd.AddCommand(newVPSDeployCmd())
	cmd.AddCommand(newVPSActionCmd("start", "Start a stopped instance", apiClientVPSStart))
	cmd.AddCommand(newVPSActionCmd("stop", "Stop a running instance", apiClientVPSStop))
	cmd.AddCommand(newVPSActionCmd("restart", "Restart a running instance", apiClientVPSRestart))
	cmd.AddCommand(newVPSReinstallCmd())
	cmd.AddCommand(newVPSDeleteCmd())

	return cmd
}

// Thin wrappers so the action commands share one constructor
func apiClientVPSStart(ctx context.Context, id int64) error   { return apiClient.VPS().Start(ctx, id) }
func apiClientVPSStop(ctx context.Context, id int64) error    { return apiClient.VPS().Stop(ctx, id) }
func apiClientVPSRestart(ctx context.Context, id int64) error { return apiClient.VPS().Restart(ctx, id) }

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newVPSListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your VPS instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.VPS().List(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list instances: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "HOSTNAME", "PLAN", "LOCATION", "STATUS", "IP")
			for _, inst := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", inst.ID),
					truncate(inst.Hostname, 30),
					inst.PlanID,
					inst.LocationID,
					formatStatus(inst.Status),
					inst.IPAddress,
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d instances\n", len(page.Data), page.TotalItems)
			return nil
		},
	}
}

func newVPSGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get VPS instance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			inst, err := apiClient.VPS().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get instance: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(inst)
			}

			fmt.Printf("ID:        %d\n", inst.ID)
			fmt.Printf("Hostname:  %s\n", inst.Hostname)
			fmt.Printf("Plan:      %s\n", inst.PlanID)
			fmt.Printf("Location:  %s\n", inst.LocationID)
			fmt.Printf("Image:     %s\n", inst.ImageID)
			fmt.Printf("Status:    %s\n", formatStatus(inst.Status))
			if inst.IPAddress != "" {
				fmt.Printf("IP:        %s\n", inst.IPAddress)
			}
			return nil
		},
	}
}

func newVPSDeployCmd() *cobra.Command {
	var req client.VPSDeployRequest

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Order a new VPS",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient.VPS().Deploy(context.Background(), req)
			if err != nil {
				return fmt.Errorf("deploy failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			fmt.Printf("Instance %d (%s) ordered, status %s\n",
				result.Instance.ID, result.Instance.Hostname, result.Instance.Status)
			fmt.Printf("Order %d charged %s\n", result.Order.ID, formatIDR(result.Order.TotalIDR))
			if result.Instance.RootPassword != "" {
				fmt.Printf("Root password (shown once): %s\n", result.Instance.RootPassword)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Hostname, "hostname", "", "instance hostname")
	cmd.Flags().StringVar(&req.PlanID, "plan", "", "plan id (see 'catalog vps-plans')")
	cmd.Flags().StringVar(&req.LocationID, "location", "", "location id")
	cmd.Flags().StringVar(&req.ImageID, "image", "", "OS image id")
	cmd.Flags().StringVar(&req.RootPassword, "root-password", "", "root password (generated if empty)")
	cmd.Flags().StringVar(&req.BillingCycle, "cycle", "monthly", "billing cycle: monthly or yearly")
	_ = cmd.MarkFlagRequired("hostname")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newVPSActionCmd(name, short string, action func(context.Context, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := action(context.Background(), id); err != nil {
				return fmt.Errorf("%s failed: %w", name, err)
			}
			fmt.Printf("Instance %d: %s requested\n", id, name)
			return nil
		},
	}
}

func newVPSReinstallCmd() *cobra.Command {
	var req client.VPSReinstallRequest

	cmd := &cobra.Command{
		Use:   "reinstall <id>",
		Short: "Reinstall an instance with a fresh image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.VPS().Reinstall(context.Background(), id, req); err != nil {
				return fmt.Errorf("reinstall failed: %w", err)
			}
			fmt.Printf("Instance %d: reinstall started\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ImageID, "image", "", "OS image id")
	cmd.Flags().StringVar(&req.RootPassword, "root-password", "", "root password (generated if empty)")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func newVPSDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Terminate an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.VPS().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Instance %d terminated\n", id)
			return nil
		},
	}
}
