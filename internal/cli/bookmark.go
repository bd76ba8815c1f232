package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage saved links",
	}

	cmd.AddCommand(newBookmarkListCmd())
	cmd.AddCommand(newBookmarkAddCmd())
	cmd.AddCommand(newBookmarkDeleteCmd())

	return cmd
}

func newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Bookmarks().List(context.Background(), client.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list bookmarks: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("ID", "TITLE", "URL", "CATEGORY")
			for _, b := range page.Data {
				t.AddRow(
					fmt.Sprintf("%d", b.ID),
					truncate(b.Title, 30),
					truncate(b.URL, 45),
					b.Category,
				)
			}
			t.Render()
			return nil
		},
	}
}

func newBookmarkAddCmd() *cobra.Command {
	var req client.BookmarkRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new bookmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := apiClient.Bookmarks().Create(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to save bookmark: %w", err)
			}
			fmt.Printf("Bookmark %d saved\n", b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "bookmark title")
	cmd.Flags().StringVar(&req.URL, "url", "", "link URL")
	cmd.Flags().StringVar(&req.Category, "category", "", "optional category")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newBookmarkDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Bookmarks().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Printf("Bookmark %d removed\n", id)
			return nil
		},
	}
}
