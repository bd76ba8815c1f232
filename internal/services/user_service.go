package services

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
)

// UserService implements user.Service
type UserService struct {
	repo       user.Repository
	bcryptCost int
	otpExpiry  time.Duration
	logger     *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(repo user.Repository, bcryptCost int, otpExpiry time.Duration, log *logger.Logger) user.Service {
	return &UserService{
		repo:       repo,
		bcryptCost: bcryptCost,
		otpExpiry:  otpExpiry,
		logger:     log,
	}
}

// Register creates an unverified account and issues an OTP code
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	code, err := generateOTP()
	if err != nil {
		return nil, errors.Internal("Failed to generate OTP", err)
	}
	expires := time.Now().Add(s.otpExpiry)

	u := &user.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         user.RoleUser,
		IsVerified:   false,
		OTPCode:      code,
		OTPExpiresAt: &expires,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create user")
		return nil, err
	}

	// Email delivery is handled by an external notifier; the code is logged
	// so development setups can complete verification.
	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
		"otp":     code,
	}).Info("User registered, OTP issued")

	return u, nil
}

// VerifyOTP marks the account verified when the code matches and is fresh
func (s *UserService) VerifyOTP(ctx context.Context, email, code string) error {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return errors.NotFound("User")
	}
	if u.IsVerified {
		return errors.InvalidState("Account is already verified")
	}
	if u.OTPCode == "" || u.OTPCode != code {
		return errors.BadRequest("Invalid verification code")
	}
	if u.OTPExpiresAt == nil || time.Now().After(*u.OTPExpiresAt) {
		return errors.BadRequest("Verification code has expired")
	}

	u.IsVerified = true
	u.OTPCode = ""
	u.OTPExpiresAt = nil
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to verify user")
		return err
	}

	s.logger.WithFields(map[string]interface{}{"user_id": u.ID}).Info("User verified")
	return nil
}

// ResendOTP issues a fresh OTP code for an unverified account
func (s *UserService) ResendOTP(ctx context.Context, email string) error {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return errors.NotFound("User")
	}
	if u.IsVerified {
		return errors.InvalidState("Account is already verified")
	}

	code, err := generateOTP()
	if err != nil {
		return errors.Internal("Failed to generate OTP", err)
	}
	expires := time.Now().Add(s.otpExpiry)
	u.OTPCode = code
	u.OTPExpiresAt = &expires

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to store OTP")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"otp":     code,
	}).Info("OTP reissued")
	return nil
}

// Authenticate checks credentials for a verified end-user account
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials")
	}
	if !u.IsVerified {
		return nil, errors.Forbidden("Account is not verified")
	}
	return u, nil
}

// AuthenticateAdmin checks credentials and requires the admin role
func (s *UserService) AuthenticateAdmin(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if u.Role != user.RoleAdmin {
		return nil, errors.Forbidden("Admin access required")
	}
	return u, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves users for the admin back-office
func (s *UserService) List(ctx context.Context, filter user.Filter, limit, offset int) ([]*user.User, int64, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// UpdateRole changes a user's role
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) error {
	if role != user.RoleUser && role != user.RoleAdmin {
		return errors.BadRequest("Unknown role")
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update role")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"user_id": id,
		"role":    role,
	}).Info("User role updated")
	return nil
}

// SetVerified overrides the verification flag
func (s *UserService) SetVerified(ctx context.Context, id int64, verified bool) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.IsVerified = verified
	if verified {
		u.OTPCode = ""
		u.OTPExpiresAt = nil
	}
	return s.repo.Update(ctx, u)
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete user")
		return err
	}
	s.logger.WithFields(map[string]interface{}{"user_id": id}).Info("User deleted")
	return nil
}
