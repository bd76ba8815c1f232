package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ClassService reads the public class catalog
type ClassService struct {
	client *Client
}

// ClassPage is one page of classes
type ClassPage struct {
	Data []Class `json:"data"`
	Pagination
}

// List returns published classes
func (s *ClassService) List(ctx context.Context, opts ListOptions) (*ClassPage, error) {
	path := "/classes"
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

	var page ClassPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeNone, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
