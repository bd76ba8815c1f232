package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// BookmarkService manages user-saved links
type BookmarkService struct {
	client *Client
}

// BookmarkRequest creates or updates a bookmark
type BookmarkRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

// BookmarkPage is one page of bookmarks
type BookmarkPage struct {
	Data []Bookmark `json:"data"`
	Pagination
}

// List returns the user's bookmarks
func (s *BookmarkService) List(ctx context.Context, opts ListOptions) (*BookmarkPage, error) {
	path := "/bookmarks"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page BookmarkPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Create saves a new bookmark
func (s *BookmarkService) Create(ctx context.Context, req BookmarkRequest) (*Bookmark, error) {
	var b Bookmark
	if err := s.client.doRequest(ctx, http.MethodPost, "/bookmarks", scopeUser, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Update replaces a bookmark's fields
func (s *BookmarkService) Update(ctx context.Context, id int64, req BookmarkRequest) error {
	return s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/bookmarks/%d", id), scopeUser, req, nil)
}

// Delete removes a bookmark
func (s *BookmarkService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/bookmarks/%d", id), scopeUser, nil, nil)
}
