package postgres

import (
	"context"
	"reflect"
	"testing"

	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/testutil"
)

func TestHostingRepository_SubdomainsRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewHostingRepository(db)
	ctx := context.Background()

	site := &hosting.Site{
		UserID:     1,
		DomainName: "belajar.com",
		PlanID:     "business",
		LocationID: "id-jkt",
		Subdomains: []string{"blog", "shop", "docs"},
		Status:     hosting.StatusPending,
	}
	if err := repo.Create(ctx, site); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, 1, site.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !reflect.DeepEqual(got.Subdomains, []string{"blog", "shop", "docs"}) {
		t.Errorf("GetByID() subdomains = %v", got.Subdomains)
	}

	got.Subdomains = []string{"blog"}
	got.Status = hosting.StatusActive
	got.URL = "https://belajar.com"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err = repo.GetAnyByID(ctx, site.ID)
	if err != nil {
		t.Fatalf("GetAnyByID() error = %v", err)
	}
	if !reflect.DeepEqual(got.Subdomains, []string{"blog"}) {
		t.Errorf("Update() subdomains = %v, want [blog]", got.Subdomains)
	}
	if got.Status != hosting.StatusActive || got.URL != "https://belajar.com" {
		t.Errorf("Update() = %+v", got)
	}
}

func TestHostingRepository_OwnerScoping(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewHostingRepository(db)
	ctx := context.Background()

	site := &hosting.Site{
		UserID:     1,
		DomainName: "belajar.com",
		PlanID:     "starter",
		LocationID: "id-jkt",
		Status:     hosting.StatusPending,
	}
	if err := repo.Create(ctx, site); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := repo.GetByID(ctx, 2, site.ID); err == nil {
		t.Error("GetByID() for another user should fail")
	}
	if err := repo.Delete(ctx, 2, site.ID); err == nil {
		t.Error("Delete() for another user should fail")
	}

	if err := repo.Delete(ctx, 1, site.ID); err != nil {
		t.Errorf("Delete() by owner error = %v", err)
	}

	_, total, err := repo.List(ctx, 1, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 0 {
		t.Errorf("List() total = %v after delete, want 0", total)
	}
}
