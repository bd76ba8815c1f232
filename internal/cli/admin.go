package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/belajarhosting/platform/pkg/client"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Back-office commands (separate admin session)",
	}

	cmd.AddCommand(newAdminLoginCmd())
	cmd.AddCommand(newAdminLogoutCmd())
	cmd.AddCommand(newAdminDashboardCmd())
	cmd.AddCommand(newAdminUserCmd())
	cmd.AddCommand(newAdminOrderCmd())
	cmd.AddCommand(newAdminTransactionCmd())
	cmd.AddCommand(newAdminBlogCmd())
	cmd.AddCommand(newAdminClassCmd())

	return cmd
}

func newAdminLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the back-office",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = promptInput("Admin email: ")
			}
			if password == "" {
				password = promptPassword("Password: ")
			}

			resp, err := apiClient.Auth().AdminLogin(context.Background(), client.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("admin login failed: %w", err)
			}

			viper.Set("auth.admin_token", resp.AccessToken)
			viper.Set("auth.admin_email", resp.User.Email)

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			fmt.Printf("Admin session opened for %s\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "password")

	return cmd
}

func newAdminLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the admin session",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("auth.admin_token", "")
			viper.Set("auth.admin_email", "")

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}

			fmt.Println("Admin session closed")
			return nil
		},
	}
}

func newAdminDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show back-office counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := apiClient.Admin().Dashboard(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get dashboard: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(summary)
			}

			fmt.Printf("Users:                %d\n", summary.TotalUsers)
			fmt.Printf("Pending orders:       %d\n", summary.PendingOrders)
			fmt.Printf("Active orders:        %d\n", summary.ActiveOrders)
			fmt.Printf("Pending transactions: %d\n", summary.PendingTransactions)
			return nil
		},
	}
}

func newAdminUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAdminUserListCmd())
	cmd.AddCommand(newAdminUserRoleCmd())
	cmd.AddCommand(newAdminUserVerifyCmd())
	cmd.AddCommand(newAdminUserDeleteCmd())

	return cmd
}

func newAdminUserListCmd() *cobra.Command {
	var search, role string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Admin().ListUsers(context.Background(), client.UserListOptions{
				Search: search,
				Role:   role,
			})
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "EMAIL", "NAME", "ROLE", "VERIFIED")
			for _, u := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", u.ID),
					truncate(u.Email, 35),
					truncate(u.FullName, 25),
					u.Role,
					fmt.Sprintf("%t", u.IsVerified),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d users\n", len(page.Data), page.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search email and name")
	cmd.Flags().StringVar(&role, "role", "", "filter by role")

	return cmd
}

func newAdminUserRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <id> <user|admin>",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().UpdateUserRole(context.Background(), id, args[1]); err != nil {
				return fmt.Errorf("role change failed: %w", err)
			}
			fmt.Printf("User %d role set to %s\n", id, args[1])
			return nil
		},
	}
}

func newAdminUserVerifyCmd() *cobra.Command {
	var unverify bool

	cmd := &cobra.Command{
		Use:   "verify <id>",
		Short: "Mark an account verified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().SetUserVerified(context.Background(), id, !unverify); err != nil {
				return fmt.Errorf("verify failed: %w", err)
			}
			fmt.Printf("User %d verified=%t\n", id, !unverify)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unverify, "revoke", false, "mark the account unverified instead")

	return cmd
}

func newAdminUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().DeleteUser(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("User %d removed\n", id)
			return nil
		},
	}
}

func newAdminOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage deploy orders",
	}

	cmd.AddCommand(newAdminOrderListCmd())
	cmd.AddCommand(newAdminOrderGetCmd())
	cmd.AddCommand(newAdminOrderStatusCmd())
	cmd.AddCommand(newAdminOrderFulfillCmd())

	return cmd
}

func newAdminOrderListCmd() *cobra.Command {
	var userID int64
	var serviceType, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Admin().ListOrders(context.Background(), client.OrderListOptions{
				UserID: userID,
				Type:   serviceType,
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to list orders: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "USER", "SERVICE", "PLAN", "CYCLE", "TOTAL", "STATUS")
			for _, o := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", o.ID),
					fmt.Sprintf("%d", o.UserID),
					o.ServiceType,
					o.PlanID,
					o.BillingCycle,
					formatIDR(o.TotalIDR),
					formatStatus(o.Status),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d orders\n", len(page.Data), page.TotalItems)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "filter by user id")
	cmd.Flags().StringVar(&serviceType, "type", "", "filter by service type (VPS, HOSTING, DATABASE, AUTOMATION)")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newAdminOrderGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			o, err := apiClient.Admin().GetOrder(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(o)
			}

			fmt.Printf("ID:       %d\n", o.ID)
			fmt.Printf("User:     %d\n", o.UserID)
			fmt.Printf("Service:  %s (instance %d)\n", o.ServiceType, o.InstanceID)
			fmt.Printf("Plan:     %s, %s\n", o.PlanID, o.BillingCycle)
			fmt.Printf("Total:    %s\n", formatIDR(o.TotalIDR))
			fmt.Printf("Status:   %s\n", formatStatus(o.Status))
			if o.PaidUntil != nil {
				fmt.Printf("Paid to:  %s\n", o.PaidUntil.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newAdminOrderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <pending|active|cancelled|expired>",
		Short: "Move an order to a status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().UpdateOrderStatus(context.Background(), id, args[1]); err != nil {
				return fmt.Errorf("status change failed: %w", err)
			}
			fmt.Printf("Order %d set to %s\n", id, args[1])
			return nil
		},
	}
}

func newAdminOrderFulfillCmd() *cobra.Command {
	var req client.FulfillRequest

	cmd := &cobra.Command{
		Use:   "fulfill <id>",
		Short: "Record the provisioning result and activate the order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().FulfillOrder(context.Background(), id, req); err != nil {
				return fmt.Errorf("fulfill failed: %w", err)
			}
			fmt.Printf("Order %d fulfilled\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.IPAddress, "ip", "", "instance IP (VPS orders)")
	cmd.Flags().StringVar(&req.Host, "host", "", "endpoint host (database orders)")
	cmd.Flags().IntVar(&req.Port, "port", 0, "endpoint port (database orders)")
	cmd.Flags().StringVar(&req.URL, "url", "", "panel URL (hosting and automation orders)")

	return cmd
}

func newAdminTransactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage credit transactions",
	}

	cmd.AddCommand(newAdminTransactionListCmd())
	cmd.AddCommand(newAdminTransactionSettleCmd())
	cmd.AddCommand(newAdminTransactionRejectCmd())

	return cmd
}

func newAdminTransactionListCmd() *cobra.Command {
	var userID int64
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credit transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Admin().ListTransactions(context.Background(), client.AdminTransactionListOptions{
				UserID: userID,
				Status: status,
			})
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "USER", "TYPE", "AMOUNT", "METHOD", "STATUS")
			for _, tx := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", tx.ID),
					fmt.Sprintf("%d", tx.UserID),
					tx.Type,
					formatIDR(tx.AmountIDR),
					tx.Method,
					formatStatus(tx.Status),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d transactions\n", len(page.Data), page.TotalItems)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "filter by user id")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newAdminTransactionSettleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle <id>",
		Short: "Mark a top-up paid and credit the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().SettleTransaction(context.Background(), id); err != nil {
				return fmt.Errorf("settle failed: %w", err)
			}
			fmt.Printf("Transaction %d settled\n", id)
			return nil
		},
	}
}

func newAdminTransactionRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Decline a pending top-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().RejectTransaction(context.Background(), id); err != nil {
				return fmt.Errorf("reject failed: %w", err)
			}
			fmt.Printf("Transaction %d rejected\n", id)
			return nil
		},
	}
}

func newAdminBlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Manage blog posts",
	}

	cmd.AddCommand(newAdminBlogListCmd())
	cmd.AddCommand(newAdminBlogPublishCmd())
	cmd.AddCommand(newAdminBlogDeleteCmd())

	return cmd
}

func newAdminBlogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all posts, drafts included",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Admin().ListPosts(context.Background(), client.BlogListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list posts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "TITLE", "CATEGORY", "PUBLISHED")
			for _, p := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", p.ID),
					truncate(p.Title, 45),
					p.Category,
					fmt.Sprintf("%t", p.Published),
				)
			}
			t.Render()
			return nil
		},
	}
}

func newAdminBlogPublishCmd() *cobra.Command {
	var unpublish bool

	cmd := &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().SetPostPublished(context.Background(), id, !unpublish); err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}
			fmt.Printf("Post %d published=%t\n", id, !unpublish)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpublish, "revoke", false, "unpublish the post instead")

	return cmd
}

func newAdminBlogDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().DeletePost(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Post %d removed\n", id)
			return nil
		},
	}
}

func newAdminClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage class listings",
	}

	cmd.AddCommand(newAdminClassListCmd())
	cmd.AddCommand(newAdminClassCreateCmd())
	cmd.AddCommand(newAdminClassDeleteCmd())

	return cmd
}

func newAdminClassListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all classes, unpublished included",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Admin().ListClasses(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list classes: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "TITLE", "LEVEL", "PRICE", "PUBLISHED")
			for _, c := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", c.ID),
					truncate(c.Title, 40),
					c.Level,
					formatIDR(c.PriceIDR),
					fmt.Sprintf("%t", c.Published),
				)
			}
			t.Render()
			return nil
		},
	}
}

func newAdminClassCreateCmd() *cobra.Command {
	var req client.ClassRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a class listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient.Admin().CreateClass(context.Background(), req)
			if err != nil {
				return fmt.Errorf("create failed: %w", err)
			}
			fmt.Printf("Class %d (%s) created\n", c.ID, c.Slug)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "class title")
	cmd.Flags().StringVar(&req.Description, "description", "", "class description")
	cmd.Flags().StringVar(&req.Level, "level", "beginner", "level: beginner, intermediate, advanced")
	cmd.Flags().Int64Var(&req.PriceIDR, "price", 0, "price in IDR, 0 for free")
	cmd.Flags().BoolVar(&req.Published, "published", false, "publish immediately")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newAdminClassDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a class listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Admin().DeleteClass(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Class %d removed\n", id)
			return nil
		},
	}
}
