package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belajarhosting/platform/pkg/client"
)

func newBlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Read the blog",
	}

	cmd.AddCommand(newBlogListCmd())
	cmd.AddCommand(newBlogReadCmd())

	return cmd
}

func newBlogListCmd() *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := apiClient.Blogs().List(context.Background(), client.BlogListOptions{
				Category: category,
				Search:   search,
			})
			if err != nil {
				return fmt.Errorf("failed to list posts: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(page.Data)
			}

			t := NewTable("SLUG", "TITLE", "CATEGORY", "DATE")
			for _, p := range page.Data {
				t.AddRow(
					p.Slug,
					truncate(p.Title, 45),
					p.Category,
					p.CreatedAt.Format("2006-01-02"),
				)
			}
			t.Render()
			fmt.Printf("\nShowing %d of %d posts\n", len(page.Data), page.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&search, "search", "", "search titles and content")

	return cmd
}

func newBlogReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <slug>",
		Short: "Read one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := apiClient.Blogs().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get post: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(post)
			}

			fmt.Printf("%s\n\n", post.Title)
			if post.Excerpt != "" {
				fmt.Printf("%s\n\n", post.Excerpt)
			}
			fmt.Println(post.Content)
			return nil
		},
	}
}
