package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/domain/blog"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newBlogFixture() (*testutil.MockBlogRepository, blog.Service) {
	repo := testutil.NewMockBlogRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return repo, NewBlogService(repo, log)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Cara Deploy VPS Pertama", "cara-deploy-vps-pertama"},
		{"  Mengenal n8n: Otomasi Tanpa Kode!  ", "mengenal-n8n-otomasi-tanpa-kode"},
		{"---", ""},
		{"PostgreSQL 15 vs 14", "postgresql-15-vs-14"},
	}

	for _, tt := range tests {
		if got := slugify(tt.title); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestBlogService_Create(t *testing.T) {
	_, svc := newBlogFixture()
	ctx := context.Background()

	post, err := svc.Create(ctx, 1, &blog.Post{
		Title:    "Cara Deploy VPS Pertama",
		Category: "tutorial",
		Content:  "Langkah pertama...",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.Slug != "cara-deploy-vps-pertama" {
		t.Errorf("Create() slug = %v, want derived from title", post.Slug)
	}
	if post.AuthorID != 1 {
		t.Errorf("Create() author = %v, want 1", post.AuthorID)
	}
	if post.Published {
		t.Error("Create() post should start unpublished")
	}

	// Duplicate slug is a conflict
	_, err = svc.Create(ctx, 1, &blog.Post{
		Title:   "Cara Deploy VPS Pertama",
		Content: "Duplikat",
	})
	if err == nil {
		t.Error("Create() duplicate slug should fail")
	}

	// Missing content is rejected
	_, err = svc.Create(ctx, 1, &blog.Post{Title: "Tanpa Isi"})
	if err == nil {
		t.Error("Create() without content should fail")
	}
}

func TestBlogService_PublishedVisibility(t *testing.T) {
	_, svc := newBlogFixture()
	ctx := context.Background()

	post, err := svc.Create(ctx, 1, &blog.Post{
		Title:   "Draft Dulu",
		Content: "Isi",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Drafts are invisible on the public side
	if _, err := svc.GetPublishedBySlug(ctx, post.Slug); err == nil {
		t.Error("GetPublishedBySlug() should not return drafts")
	}
	posts, _, err := svc.ListPublished(ctx, blog.Filter{}, 20, 0)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("ListPublished() returned %d drafts, want 0", len(posts))
	}

	// Admin listing sees everything
	all, _, err := svc.ListAll(ctx, blog.Filter{}, 20, 0)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAll() returned %d posts, want 1", len(all))
	}

	if err := svc.SetPublished(ctx, post.ID, true); err != nil {
		t.Fatalf("SetPublished() error = %v", err)
	}

	got, err := svc.GetPublishedBySlug(ctx, post.Slug)
	if err != nil {
		t.Fatalf("GetPublishedBySlug() error = %v", err)
	}
	if got.ID != post.ID {
		t.Errorf("GetPublishedBySlug() id = %v, want %v", got.ID, post.ID)
	}
}

func TestBlogService_CategoryFilter(t *testing.T) {
	_, svc := newBlogFixture()
	ctx := context.Background()

	p1, _ := svc.Create(ctx, 1, &blog.Post{Title: "Tutorial Satu", Category: "tutorial", Content: "A"})
	p2, _ := svc.Create(ctx, 1, &blog.Post{Title: "Berita Satu", Category: "news", Content: "B"})
	svc.SetPublished(ctx, p1.ID, true)
	svc.SetPublished(ctx, p2.ID, true)

	posts, total, err := svc.ListPublished(ctx, blog.Filter{Category: "tutorial"}, 20, 0)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].Category != "tutorial" {
		t.Errorf("ListPublished() filter returned %d posts, want the tutorial one", len(posts))
	}
}
