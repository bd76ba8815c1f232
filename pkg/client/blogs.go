package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// BlogService reads the public blog. Only published posts are visible here;
// drafts live behind the admin endpoints.
type BlogService struct {
	client *Client
}

// BlogListOptions narrow public post listings
type BlogListOptions struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// PostPage is one page of blog posts
type PostPage struct {
	Data []Post `json:"data"`
	Pagination
}

// List returns published posts
func (s *BlogService) List(ctx context.Context, opts BlogListOptions) (*PostPage, error) {
	path := "/blogs"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page PostPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeNone, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one published post by slug
func (s *BlogService) Get(ctx context.Context, slug string) (*Post, error) {
	var post Post
	path := fmt.Sprintf("/blogs/%s", url.PathEscape(slug))
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeNone, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
