package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/domain/class"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newClassFixture() class.Service {
	repo := testutil.NewMockClassRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewClassService(repo, log)
}

func TestClassService_Create(t *testing.T) {
	svc := newClassFixture()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *class.Class
		wantErr bool
	}{
		{
			name: "valid class",
			input: &class.Class{
				Title:    "Dasar Linux untuk Hosting",
				Level:    "beginner",
				PriceIDR: 150000,
			},
		},
		{
			name: "unknown level",
			input: &class.Class{
				Title: "Kelas Misterius",
				Level: "expert",
			},
			wantErr: true,
		},
		{
			name: "negative price",
			input: &class.Class{
				Title:    "Kelas Minus",
				Level:    "beginner",
				PriceIDR: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Create(ctx, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && c.Slug == "" {
				t.Error("Create() slug not derived")
			}
		})
	}
}

func TestClassService_PublishedVisibility(t *testing.T) {
	svc := newClassFixture()
	ctx := context.Background()

	c, err := svc.Create(ctx, &class.Class{
		Title: "Kelas Draft",
		Level: "beginner",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	public, _, err := svc.ListPublished(ctx, 20, 0)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(public) != 0 {
		t.Errorf("ListPublished() returned %d drafts, want 0", len(public))
	}

	c.Published = true
	if err := svc.Update(ctx, c); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	public, _, err = svc.ListPublished(ctx, 20, 0)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(public) != 1 {
		t.Errorf("ListPublished() returned %d classes, want 1", len(public))
	}
}
