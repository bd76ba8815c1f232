package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// UserRepository implements user.Repository
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) user.Repository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, full_name, password_hash, role, is_verified, otp_code, otp_expires_at, created_at, updated_at"

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
		INSERT INTO users (email, full_name, password_hash, role, is_verified, otp_code, otp_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var otpExpires sql.NullInt64
	if u.OTPExpiresAt != nil {
		otpExpires = sql.NullInt64{Int64: u.OTPExpiresAt.Unix(), Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		u.Email, u.FullName, u.PasswordHash, u.Role, u.IsVerified, u.OTPCode, otpExpires, now.Unix(), now.Unix(),
	).Scan(&u.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create user", err)
	}
	return nil
}

func scanUser(scan func(dest ...interface{}) error) (*user.User, error) {
	var u user.User
	var fullName, otpCode sql.NullString
	var otpExpires sql.NullInt64
	var createdAt, updatedAt int64

	err := scan(
		&u.ID, &u.Email, &fullName, &u.PasswordHash, &u.Role, &u.IsVerified,
		&otpCode, &otpExpires, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fullName.Valid {
		u.FullName = fullName.String
	}
	if otpCode.Valid {
		u.OTPCode = otpCode.String
	}
	if otpExpires.Valid {
		t := time.Unix(otpExpires.Int64, 0)
		u.OTPExpiresAt = &t
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)

	return &u, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	row := r.db.QueryRowContext(ctx, query, email)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("User")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get user", err)
	}
	return u, nil
}

// Update updates a user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET email = $1, full_name = $2, password_hash = $3, role = $4, is_verified = $5, otp_code = $6, otp_expires_at = $7, updated_at = $8
		WHERE id = $9
	`

	var otpExpires sql.NullInt64
	if u.OTPExpiresAt != nil {
		otpExpires = sql.NullInt64{Int64: u.OTPExpiresAt.Unix(), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		u.Email, u.FullName, u.PasswordHash, u.Role, u.IsVerified, u.OTPCode, otpExpires, u.UpdatedAt.Unix(), u.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("User")
	}
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete user", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("User")
	}
	return nil
}

// List retrieves users matching the filter with pagination
func (r *UserRepository) List(ctx context.Context, filter user.Filter, limit, offset int) ([]*user.User, int64, error) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
		where += fmt.Sprintf(" AND (email LIKE $%d OR full_name LIKE $%d)", len(args)-1, len(args))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		where += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		where += fmt.Sprintf(" AND is_verified = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count users", err)
	}

	query := fmt.Sprintf("SELECT %s FROM users%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		userColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate users", err)
	}

	return users, total, nil
}
