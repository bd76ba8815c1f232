package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/belajarhosting/platform/internal/domain/bookmark"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// BookmarkRepository implements bookmark.Repository
type BookmarkRepository struct {
	db *sql.DB
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *sql.DB) bookmark.Repository {
	return &BookmarkRepository{db: db}
}

func scanBookmark(scan func(dest ...interface{}) error) (*bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	var category sql.NullString
	var createdAt int64

	err := scan(&b.ID, &b.UserID, &b.Title, &b.URL, &category, &createdAt)
	if err != nil {
		return nil, err
	}

	if category.Valid {
		b.Category = category.String
	}
	b.CreatedAt = time.Unix(createdAt, 0)
	return &b, nil
}

// Create creates a new bookmark
func (r *BookmarkRepository) Create(ctx context.Context, b *bookmark.Bookmark) error {
	now := time.Now()
	b.CreatedAt = now

	query := `
		INSERT INTO bookmarks (user_id, title, url, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, b.UserID, b.Title, b.URL, b.Category, now.Unix()).Scan(&b.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create bookmark", err)
	}
	return nil
}

// GetByID retrieves a bookmark scoped to its owner
func (r *BookmarkRepository) GetByID(ctx context.Context, userID, id int64) (*bookmark.Bookmark, error) {
	query := `SELECT id, user_id, title, url, category, created_at FROM bookmarks WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	b, err := scanBookmark(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Bookmark")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get bookmark", err)
	}
	return b, nil
}

// Update updates a bookmark
func (r *BookmarkRepository) Update(ctx context.Context, b *bookmark.Bookmark) error {
	query := `UPDATE bookmarks SET title = $1, url = $2, category = $3 WHERE id = $4 AND user_id = $5`

	result, err := r.db.ExecContext(ctx, query, b.Title, b.URL, b.Category, b.ID, b.UserID)
	if err != nil {
		return errors.DatabaseError("Failed to update bookmark", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Bookmark")
	}
	return nil
}

// Delete deletes a bookmark owned by the user
func (r *BookmarkRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete bookmark", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Bookmark")
	}
	return nil
}

// List retrieves the user's bookmarks with pagination
func (r *BookmarkRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*bookmark.Bookmark, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookmarks WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count bookmarks", err)
	}

	query := `SELECT id, user_id, title, url, category, created_at FROM bookmarks WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list bookmarks", err)
	}
	defer rows.Close()

	var bookmarks []*bookmark.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan bookmark", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate bookmarks", err)
	}

	return bookmarks, total, nil
}
