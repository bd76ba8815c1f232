package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/belajarhosting/platform/internal/domain/bookmark"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
)

// BookmarkService implements bookmark.Service
type BookmarkService struct {
	repo   bookmark.Repository
	logger *logger.Logger
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo bookmark.Repository, log *logger.Logger) bookmark.Service {
	return &BookmarkService{repo: repo, logger: log}
}

// Create saves a link for the user
func (s *BookmarkService) Create(ctx context.Context, userID int64, title, rawURL, category string) (*bookmark.Bookmark, error) {
	title = strings.TrimSpace(title)
	rawURL = strings.TrimSpace(rawURL)

	var fieldErrs []string
	if title == "" {
		fieldErrs = append(fieldErrs, "title is required")
	}
	if rawURL == "" {
		fieldErrs = append(fieldErrs, "url is required")
	} else if u, err := url.Parse(rawURL); err != nil || u.Scheme == "" || u.Host == "" {
		fieldErrs = append(fieldErrs, "url must be absolute")
	}
	if len(fieldErrs) > 0 {
		return nil, errors.ValidationError("Validation failed", fieldErrs)
	}

	b := &bookmark.Bookmark{
		UserID:   userID,
		Title:    title,
		URL:      rawURL,
		Category: category,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create bookmark")
		return nil, err
	}
	return b, nil
}

// Update changes a bookmark owned by the user
func (s *BookmarkService) Update(ctx context.Context, userID int64, b *bookmark.Bookmark) error {
	existing, err := s.repo.GetByID(ctx, userID, b.ID)
	if err != nil {
		return err
	}
	if b.Title != "" {
		existing.Title = b.Title
	}
	if b.URL != "" {
		if u, err := url.Parse(b.URL); err != nil || u.Scheme == "" || u.Host == "" {
			return errors.ValidationError("Validation failed", []string{"url must be absolute"})
		}
		existing.URL = b.URL
	}
	if b.Category != "" {
		existing.Category = b.Category
	}
	return s.repo.Update(ctx, existing)
}

// Delete removes a bookmark owned by the user
func (s *BookmarkService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

// List retrieves the user's bookmarks
func (s *BookmarkService) List(ctx context.Context, userID int64, limit, offset int) ([]*bookmark.Bookmark, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}
