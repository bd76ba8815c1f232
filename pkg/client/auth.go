package client

import (
	"context"
	"net/http"
)

// AuthService handles registration, login and session inspection
type AuthService struct {
	client *Client
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyOTPRequest confirms the emailed verification code
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type resendOTPRequest struct {
	Email string `json:"email"`
}

// Register creates an account; the account stays unverified until the
// emailed OTP is confirmed.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, http.MethodPost, "/auth/register", scopeNone, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// VerifyOTP confirms the verification code. The account can log in once
// verified.
func (s *AuthService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) error {
	return s.client.doRequest(ctx, http.MethodPost, "/auth/verify-otp", scopeNone, req, nil)
}

// ResendOTP sends a fresh verification code
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	return s.client.doRequest(ctx, http.MethodPost, "/auth/resend-otp", scopeNone, resendOTPRequest{Email: email}, nil)
}

// Login authenticates a customer and stores the user token on the client
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.doRequest(ctx, http.MethodPost, "/auth/login", scopeNone, req, &resp); err != nil {
		return nil, err
	}
	s.client.SetToken(resp.AccessToken)
	return &resp, nil
}

// AdminLogin authenticates a back-office admin and stores the admin token
// on the client. The customer token, if any, is left untouched.
func (s *AuthService) AdminLogin(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.doRequest(ctx, http.MethodPost, "/admin/auth/login", scopeNone, req, &resp); err != nil {
		return nil, err
	}
	s.client.SetAdminToken(resp.AccessToken)
	return &resp, nil
}

// Me returns the account behind the user token
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, http.MethodGet, "/auth/me", scopeUser, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminMe returns the account behind the admin token
func (s *AuthService) AdminMe(ctx context.Context) (*User, error) {
	var u User
	if err := s.client.doRequest(ctx, http.MethodGet, "/admin/auth/me", scopeAdmin, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout clears the server-set session cookies and drops the user token
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.doRequest(ctx, http.MethodPost, "/auth/logout", scopeUser, nil, nil); err != nil {
		return err
	}
	s.client.SetToken("")
	return nil
}
