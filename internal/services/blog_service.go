package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/belajarhosting/platform/internal/domain/blog"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
)

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a URL slug from a title
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// BlogService implements blog.Service
type BlogService struct {
	repo   blog.Repository
	logger *logger.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(repo blog.Repository, log *logger.Logger) blog.Service {
	return &BlogService{repo: repo, logger: log}
}

// ListPublished retrieves published posts for the public blog
func (s *BlogService) ListPublished(ctx context.Context, filter blog.Filter, limit, offset int) ([]*blog.Post, int64, error) {
	filter.PublishedOnly = true
	return s.repo.List(ctx, filter, limit, offset)
}

// GetPublishedBySlug retrieves one published post. Drafts are invisible to
// the public side.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, errors.NotFound("Post")
	}
	return post, nil
}

// Create creates a post. The slug derives from the title unless set
// explicitly.
func (s *BlogService) Create(ctx context.Context, authorID int64, post *blog.Post) (*blog.Post, error) {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return nil, errors.ValidationError("Validation failed", []string{"title is required"})
	}
	if strings.TrimSpace(post.Content) == "" {
		return nil, errors.ValidationError("Validation failed", []string{"content is required"})
	}

	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	if existing, err := s.repo.GetBySlug(ctx, post.Slug); err == nil && existing != nil {
		return nil, errors.Conflict("A post with this slug already exists")
	}

	post.AuthorID = authorID
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create post")
		return nil, err
	}
	s.logger.WithFields(map[string]interface{}{
		"post_id": post.ID,
		"slug":    post.Slug,
	}).Info("Blog post created")
	return post, nil
}

// Get retrieves any post, published or not
func (s *BlogService) Get(ctx context.Context, id int64) (*blog.Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a post's content fields
func (s *BlogService) Update(ctx context.Context, post *blog.Post) error {
	existing, err := s.repo.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}

	if post.Title != "" {
		existing.Title = post.Title
	}
	if post.Slug != "" {
		existing.Slug = post.Slug
	}
	if post.Category != "" {
		existing.Category = post.Category
	}
	if post.Excerpt != "" {
		existing.Excerpt = post.Excerpt
	}
	if post.Content != "" {
		existing.Content = post.Content
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update post")
		return err
	}
	return nil
}

// SetPublished publishes or unpublishes a post
func (s *BlogService) SetPublished(ctx context.Context, id int64, published bool) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	post.Published = published
	if err := s.repo.Update(ctx, post); err != nil {
		s.logger.ErrorWithErr(err, "Failed to change publish state")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"post_id":   id,
		"published": published,
	}).Info("Blog post publish state changed")
	return nil
}

// Delete removes a post
func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListAll retrieves posts including drafts, for the admin CMS
func (s *BlogService) ListAll(ctx context.Context, filter blog.Filter, limit, offset int) ([]*blog.Post, int64, error) {
	return s.repo.List(ctx, filter, limit, offset)
}
