package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/domain/bookmark"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func TestBookmarkService_Create(t *testing.T) {
	repo := testutil.NewMockBookmarkRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewBookmarkService(repo, log)
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		url     string
		wantErr bool
	}{
		{
			name:  "valid bookmark",
			title: "Go docs",
			url:   "https://go.dev/doc",
		},
		{
			name:    "missing title",
			url:     "https://go.dev",
			wantErr: true,
		},
		{
			name:    "relative url",
			title:   "broken",
			url:     "/just/a/path",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tt.title, tt.url, "dev")
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookmarkService_OwnerIsolation(t *testing.T) {
	repo := testutil.NewMockBookmarkRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewBookmarkService(repo, log)
	ctx := context.Background()

	b, err := svc.Create(ctx, 1, "Mine", "https://example.com", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, 2, b.ID); err == nil {
		t.Error("Delete() by another user should fail")
	}
	if err := svc.Update(ctx, 2, &bookmark.Bookmark{ID: b.ID, Title: "Stolen"}); err == nil {
		t.Error("Update() by another user should fail")
	}

	list, total, err := svc.List(ctx, 2, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 0 || len(list) != 0 {
		t.Errorf("List() for another user returned %d bookmarks, want 0", len(list))
	}

	if err := svc.Delete(ctx, 1, b.ID); err != nil {
		t.Errorf("Delete() by owner error = %v", err)
	}
}
