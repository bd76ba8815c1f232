package services

import (
	"context"
	"strings"

	"github.com/belajarhosting/platform/internal/domain/class"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
)

// ClassService implements class.Service
type ClassService struct {
	repo   class.Repository
	logger *logger.Logger
}

// NewClassService creates a new class service
func NewClassService(repo class.Repository, log *logger.Logger) class.Service {
	return &ClassService{repo: repo, logger: log}
}

// ListPublished retrieves published classes for the public catalog
func (s *ClassService) ListPublished(ctx context.Context, limit, offset int) ([]*class.Class, int64, error) {
	return s.repo.List(ctx, true, limit, offset)
}

// Create creates a class. The slug derives from the title unless set
// explicitly.
func (s *ClassService) Create(ctx context.Context, c *class.Class) (*class.Class, error) {
	c.Title = strings.TrimSpace(c.Title)

	var fieldErrs []string
	if c.Title == "" {
		fieldErrs = append(fieldErrs, "title is required")
	}
	switch c.Level {
	case "beginner", "intermediate", "advanced":
	default:
		fieldErrs = append(fieldErrs, "level must be beginner, intermediate or advanced")
	}
	if c.PriceIDR < 0 {
		fieldErrs = append(fieldErrs, "price must not be negative")
	}
	if len(fieldErrs) > 0 {
		return nil, errors.ValidationError("Validation failed", fieldErrs)
	}

	if c.Slug == "" {
		c.Slug = slugify(c.Title)
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create class")
		return nil, err
	}
	s.logger.WithFields(map[string]interface{}{
		"class_id": c.ID,
		"slug":     c.Slug,
	}).Info("Class created")
	return c, nil
}

// Get retrieves any class, published or not
func (s *ClassService) Get(ctx context.Context, id int64) (*class.Class, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a class
func (s *ClassService) Update(ctx context.Context, c *class.Class) error {
	existing, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.Title != "" {
		existing.Title = c.Title
	}
	if c.Slug != "" {
		existing.Slug = c.Slug
	}
	if c.Description != "" {
		existing.Description = c.Description
	}
	if c.Level != "" {
		switch c.Level {
		case "beginner", "intermediate", "advanced":
		default:
			return errors.ValidationError("Validation failed", []string{"level must be beginner, intermediate or advanced"})
		}
		existing.Level = c.Level
	}
	if c.PriceIDR > 0 {
		existing.PriceIDR = c.PriceIDR
	}
	existing.Published = c.Published
	return s.repo.Update(ctx, existing)
}

// Delete removes a class
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListAll retrieves classes including unpublished ones, for the admin
func (s *ClassService) ListAll(ctx context.Context, limit, offset int) ([]*class.Class, int64, error) {
	return s.repo.List(ctx, false, limit, offset)
}
