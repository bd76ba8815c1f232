package services

import (
	"context"
	"testing"
	"time"

	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newUserFixture() (*testutil.MockUserRepository, user.Service) {
	repo := testutil.NewMockUserRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	// Low bcrypt cost keeps the tests fast
	svc := NewUserService(repo, 4, 10*time.Minute, log)
	return repo, svc
}

func TestUserService_Register(t *testing.T) {
	repo, svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Budi@Example.COM", "secret123", "Budi Santoso")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if u.Email != "budi@example.com" {
		t.Errorf("Register() email = %v, want lowercased", u.Email)
	}
	if u.IsVerified {
		t.Error("Register() account should start unverified")
	}
	if u.OTPCode == "" || len(u.OTPCode) != 6 {
		t.Errorf("Register() otp = %q, want 6 digits", u.OTPCode)
	}
	if u.Role != user.RoleUser {
		t.Errorf("Register() role = %v, want user", u.Role)
	}
	if u.PasswordHash == "secret123" {
		t.Error("Register() password stored in plain text")
	}

	// Duplicate registration is a conflict
	_, err = svc.Register(ctx, "budi@example.com", "other456", "Budi S")
	if err == nil {
		t.Fatal("Register() duplicate email should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeConflict {
		t.Errorf("Register() error = %v, want conflict", err)
	}
	if len(repo.Users) != 1 {
		t.Errorf("Register() user count = %d, want 1", len(repo.Users))
	}
}

func TestUserService_VerifyOTP(t *testing.T) {
	repo, svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "budi@example.com", "secret123", "Budi")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name    string
		email   string
		code    string
		setup   func()
		wantErr bool
	}{
		{
			name:    "wrong code is rejected",
			email:   "budi@example.com",
			code:    "000000",
			wantErr: true,
		},
		{
			name:    "unknown account is rejected",
			email:   "nobody@example.com",
			code:    u.OTPCode,
			wantErr: true,
		},
		{
			name:  "matching fresh code verifies",
			email: "budi@example.com",
			code:  u.OTPCode,
		},
		{
			name:    "already verified is rejected",
			email:   "budi@example.com",
			code:    u.OTPCode,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyOTP(ctx, tt.email, tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if !repo.Users[u.ID].IsVerified {
		t.Error("VerifyOTP() account not marked verified")
	}
	if repo.Users[u.ID].OTPCode != "" {
		t.Error("VerifyOTP() otp code not cleared")
	}
}

func TestUserService_VerifyOTP_Expired(t *testing.T) {
	repo, svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "budi@example.com", "secret123", "Budi")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	expired := time.Now().Add(-time.Minute)
	repo.Users[u.ID].OTPExpiresAt = &expired

	if err := svc.VerifyOTP(ctx, "budi@example.com", u.OTPCode); err == nil {
		t.Error("VerifyOTP() with expired code should fail")
	}

	// ResendOTP issues a fresh code
	if err := svc.ResendOTP(ctx, "budi@example.com"); err != nil {
		t.Fatalf("ResendOTP() error = %v", err)
	}
	fresh := repo.Users[u.ID]
	if fresh.OTPCode == "" || fresh.OTPExpiresAt == nil || !fresh.OTPExpiresAt.After(time.Now()) {
		t.Error("ResendOTP() did not refresh the code")
	}
	if err := svc.VerifyOTP(ctx, "budi@example.com", fresh.OTPCode); err != nil {
		t.Errorf("VerifyOTP() after resend error = %v", err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	_, svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "budi@example.com", "secret123", "Budi")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Unverified accounts cannot sign in
	_, err = svc.Authenticate(ctx, "budi@example.com", "secret123")
	if err == nil {
		t.Fatal("Authenticate() unverified account should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeForbidden {
		t.Errorf("Authenticate() error = %v, want forbidden", err)
	}

	if err := svc.VerifyOTP(ctx, "budi@example.com", u.OTPCode); err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}

	got, err := svc.Authenticate(ctx, "budi@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("Authenticate() user = %v, want %v", got.ID, u.ID)
	}

	if _, err := svc.Authenticate(ctx, "budi@example.com", "wrongpass"); err == nil {
		t.Error("Authenticate() wrong password should fail")
	}
}

func TestUserService_AuthenticateAdmin(t *testing.T) {
	_, svc := newUserFixture()
	ctx := context.Background()

	u, err := svc.Register(ctx, "admin@example.com", "secret123", "Admin")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := svc.VerifyOTP(ctx, "admin@example.com", u.OTPCode); err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}

	// Plain users cannot use the admin login
	if _, err := svc.AuthenticateAdmin(ctx, "admin@example.com", "secret123"); err == nil {
		t.Fatal("AuthenticateAdmin() for a plain user should fail")
	}

	if err := svc.UpdateRole(ctx, u.ID, user.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole() error = %v", err)
	}
	if _, err := svc.AuthenticateAdmin(ctx, "admin@example.com", "secret123"); err != nil {
		t.Errorf("AuthenticateAdmin() error = %v", err)
	}
}
