package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreditService manages the prepaid credit balance
type CreditService struct {
	client *Client
}

// TopUpRequest records a pending top-up for admin settlement
type TopUpRequest struct {
	AmountIDR int64  `json:"amount_idr"`
	Method    string `json:"method"`
}

// TransactionListOptions narrow transaction listings
type TransactionListOptions struct {
	Page   int
	Limit  int
	Type   string
	Status string
}

// TransactionPage is one page of credit transactions
type TransactionPage struct {
	Data []Transaction `json:"data"`
	Pagination
}

type balanceResponse struct {
	BalanceIDR int64 `json:"balance_idr"`
}

// Balance returns the current credit balance in IDR
func (s *CreditService) Balance(ctx context.Context) (int64, error) {
	var resp balanceResponse
	if err := s.client.doRequest(ctx, http.MethodGet, "/credits/balance", scopeUser, nil, &resp); err != nil {
		return 0, err
	}
	return resp.BalanceIDR, nil
}

// TopUp records a pending top-up. The balance moves only once an admin
// settles the transaction.
func (s *CreditService) TopUp(ctx context.Context, req TopUpRequest) (*Transaction, error) {
	var tx Transaction
	if err := s.client.doRequest(ctx, http.MethodPost, "/credits/topup", scopeUser, req, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Transactions returns the user's credit ledger
func (s *CreditService) Transactions(ctx context.Context, opts TransactionListOptions) (*TransactionPage, error) {
	path := "/credits/transactions"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page TransactionPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Cancel withdraws a still-pending top-up
func (s *CreditService) Cancel(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/credits/transactions/%d/cancel", id), scopeUser, nil, nil)
}
