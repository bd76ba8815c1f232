package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)

	tests := []struct {
		name    string
		user    *user.User
		wantErr bool
	}{
		{
			name: "create user successfully",
			user: &user.User{
				Email:        "test@example.com",
				PasswordHash: "hashed",
				Role:         user.RoleUser,
			},
			wantErr: false,
		},
		{
			name: "duplicate email fails",
			user: &user.User{
				Email:        "test@example.com",
				PasswordHash: "hashed",
				Role:         user.RoleUser,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			err := repo.Create(ctx, tt.user)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && tt.user.ID == 0 {
				t.Error("Create() did not set user ID")
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	expires := time.Now().Add(10 * time.Minute)
	u := &user.User{
		Email:        "budi@example.com",
		FullName:     "Budi",
		PasswordHash: "hashed",
		Role:         user.RoleUser,
		OTPCode:      "123456",
		OTPExpiresAt: &expires,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByEmail(ctx, "budi@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("GetByEmail() id = %v, want %v", got.ID, u.ID)
	}
	if got.OTPCode != "123456" {
		t.Errorf("GetByEmail() otp = %v, want 123456", got.OTPCode)
	}
	if got.OTPExpiresAt == nil {
		t.Error("GetByEmail() otp expiry not persisted")
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); err == nil {
		t.Error("GetByEmail() for missing user should fail")
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &user.User{
		Email:        "budi@example.com",
		PasswordHash: "hashed",
		Role:         user.RoleUser,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	u.IsVerified = true
	u.Role = user.RoleAdmin
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.IsVerified || got.Role != user.RoleAdmin {
		t.Errorf("Update() not persisted: verified=%v role=%v", got.IsVerified, got.Role)
	}
}

func TestUserRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewUserRepository(db)
	ctx := context.Background()

	users := []*user.User{
		{Email: "a@example.com", PasswordHash: "h", Role: user.RoleUser, IsVerified: true},
		{Email: "b@example.com", PasswordHash: "h", Role: user.RoleAdmin, IsVerified: true},
		{Email: "c@example.com", PasswordHash: "h", Role: user.RoleUser},
	}
	for _, u := range users {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, total, err := repo.List(ctx, user.Filter{}, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Errorf("List() total = %v, want 3", total)
	}

	admins, total, err := repo.List(ctx, user.Filter{Role: user.RoleAdmin}, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || admins[0].Email != "b@example.com" {
		t.Errorf("List() role filter returned %d users", len(admins))
	}

	verified := true
	got, total, err := repo.List(ctx, user.Filter{Verified: &verified}, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 {
		t.Errorf("List() verified filter total = %v, want 2", total)
	}
	_ = got
}
