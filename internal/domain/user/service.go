package user

import "context"

// Service defines the interface for user business logic
type Service interface {
	// Register creates an unverified account and issues an OTP code
	Register(ctx context.Context, email, password, fullName string) (*User, error)

	// VerifyOTP marks the account verified when the code matches and is fresh
	VerifyOTP(ctx context.Context, email, code string) error

	// ResendOTP issues a fresh OTP code for an unverified account
	ResendOTP(ctx context.Context, email string) error

	// Authenticate checks credentials for a verified end-user account
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// AuthenticateAdmin checks credentials and requires the admin role
	AuthenticateAdmin(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// List retrieves users for the admin back-office
	List(ctx context.Context, filter Filter, limit, offset int) ([]*User, int64, error)

	// UpdateRole changes a user's role
	UpdateRole(ctx context.Context, id int64, role string) error

	// SetVerified overrides the verification flag
	SetVerified(ctx context.Context, id int64, verified bool) error

	// Delete removes a user
	Delete(ctx context.Context, id int64) error
}
