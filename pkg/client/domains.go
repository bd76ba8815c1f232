package client

import (
	"context"
	"net/http"
	"net/url"
)

// DomainService checks domain availability and pricing
type DomainService struct {
	client *Client
}

// Check looks up one fully qualified domain
func (s *DomainService) Check(ctx context.Context, domain string) (*DomainCheckResult, error) {
	query := url.Values{}
	query.Set("domain", domain)

	var result DomainCheckResult
	if err := s.client.doRequest(ctx, http.MethodGet, "/domains/check?"+query.Encode(), scopeUser, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckAll looks up a bare name across every sold TLD
func (s *DomainService) CheckAll(ctx context.Context, name string) ([]DomainCheckResult, error) {
	query := url.Values{}
	query.Set("name", name)

	var results []DomainCheckResult
	if err := s.client.doRequest(ctx, http.MethodGet, "/domains/check-all?"+query.Encode(), scopeUser, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
