package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/belajarhosting/platform/internal/domain/blog"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// BlogRepository implements blog.Repository
type BlogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *sql.DB) blog.Repository {
	return &BlogRepository{db: db}
}

const blogColumns = "id, author_id, title, slug, category, excerpt, content, published, created_at, updated_at"

func scanPost(scan func(dest ...interface{}) error) (*blog.Post, error) {
	var p blog.Post
	var category, excerpt sql.NullString
	var createdAt, updatedAt int64

	err := scan(
		&p.ID, &p.AuthorID, &p.Title, &p.Slug, &category, &excerpt,
		&p.Content, &p.Published, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if category.Valid {
		p.Category = category.String
	}
	if excerpt.Valid {
		p.Excerpt = excerpt.String
	}
	p.CreatedAt = time.Unix(createdAt, 0)
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}

// Create creates a new post
func (r *BlogRepository) Create(ctx context.Context, post *blog.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO blog_posts (author_id, title, slug, category, excerpt, content, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		post.AuthorID, post.Title, post.Slug, post.Category, post.Excerpt,
		post.Content, post.Published, now.Unix(), now.Unix(),
	).Scan(&post.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create post", err)
	}
	return nil
}

// GetByID retrieves a post
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Post")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get post", err)
	}
	return p, nil
}

// GetBySlug retrieves a post by its slug
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`

	row := r.db.QueryRowContext(ctx, query, slug)
	p, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Post")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get post", err)
	}
	return p, nil
}

// Update updates a post
func (r *BlogRepository) Update(ctx context.Context, post *blog.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, category = $3, excerpt = $4, content = $5, published = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		post.Title, post.Slug, post.Category, post.Excerpt, post.Content,
		post.Published, post.UpdatedAt.Unix(), post.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update post", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Post")
	}
	return nil
}

// Delete deletes a post
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return errors.DatabaseError("Failed to delete post", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Post")
	}
	return nil
}

// List retrieves posts matching the filter with pagination
func (r *BlogRepository) List(ctx context.Context, filter blog.Filter, limit, offset int) ([]*blog.Post, int64, error) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.PublishedOnly {
		args = append(args, true)
		where += fmt.Sprintf(" AND published = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
		where += fmt.Sprintf(" AND (title LIKE $%d OR excerpt LIKE $%d)", len(args)-1, len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blog_posts"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count posts", err)
	}

	query := fmt.Sprintf("SELECT %s FROM blog_posts%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		blogColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list posts", err)
	}
	defer rows.Close()

	var posts []*blog.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate posts", err)
	}

	return posts, total, nil
}
