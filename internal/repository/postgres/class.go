package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/belajarhosting/platform/internal/domain/class"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// ClassRepository implements class.Repository
type ClassRepository struct {
	db *sql.DB
}

// NewClassRepository creates a new class repository
func NewClassRepository(db *sql.DB) class.Repository {
	return &ClassRepository{db: db}
}

const classColumns = "id, title, slug, description, level, price_idr, published, created_at, updated_at"

func scanClass(scan func(dest ...interface{}) error) (*class.Class, error) {
	var c class.Class
	var description sql.NullString
	var createdAt, updatedAt int64

	err := scan(&c.ID, &c.Title, &c.Slug, &description, &c.Level, &c.PriceIDR, &c.Published, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		c.Description = description.String
	}
	c.CreatedAt = time.Unix(createdAt, 0)
	c.UpdatedAt = time.Unix(updatedAt, 0)
	return &c, nil
}

// Create creates a new class
func (r *ClassRepository) Create(ctx context.Context, c *class.Class) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO classes (title, slug, description, level, price_idr, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Slug, c.Description, c.Level, c.PriceIDR, c.Published, now.Unix(), now.Unix(),
	).Scan(&c.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create class", err)
	}
	return nil
}

// GetByID retrieves a class
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*class.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanClass(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Class")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get class", err)
	}
	return c, nil
}

// Update updates a class
func (r *ClassRepository) Update(ctx context.Context, c *class.Class) error {
	c.UpdatedAt = time.Now()

	query := `
		UPDATE classes
		SET title = $1, slug = $2, description = $3, level = $4, price_idr = $5, published = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Title, c.Slug, c.Description, c.Level, c.PriceIDR, c.Published, c.UpdatedAt.Unix(), c.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update class", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Class")
	}
	return nil
}

// Delete deletes a class
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete class", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Class")
	}
	return nil
}

// List retrieves classes with pagination, optionally published only
func (r *ClassRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*class.Class, int64, error) {
	where := ""
	var args []interface{}
	if publishedOnly {
		where = " WHERE published = $1"
		args = append(args, true)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM classes"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count classes", err)
	}

	query := fmt.Sprintf("SELECT %s FROM classes%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		classColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list classes", err)
	}
	defer rows.Close()

	var classes []*class.Class
	for rows.Next() {
		c, err := scanClass(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan class", err)
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate classes", err)
	}

	return classes, total, nil
}
