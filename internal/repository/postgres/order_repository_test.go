package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/testutil"
)

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := &order.Order{
		UserID:       1,
		ServiceType:  order.ServiceVPS,
		InstanceID:   10,
		PlanID:       "vps-basic",
		BillingCycle: "monthly",
		TotalIDR:     50000,
		ReferenceIDR: 50000,
		Status:       order.StatusPending,
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if o.ID == 0 {
		t.Fatal("Create() did not set ID")
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.PlanID != "vps-basic" || got.Status != order.StatusPending {
		t.Errorf("GetByID() = %+v", got)
	}
	if got.PaidUntil != nil {
		t.Error("GetByID() paid_until should be nil for a pending order")
	}

	if _, err := repo.GetByID(ctx, 999); err == nil {
		t.Error("GetByID() for missing order should fail")
	}
}

func TestOrderRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := &order.Order{
		UserID:       1,
		ServiceType:  order.ServiceHosting,
		InstanceID:   5,
		PlanID:       "starter",
		BillingCycle: "yearly",
		TotalIDR:     150000,
		ReferenceIDR: 180000,
		Status:       order.StatusPending,
	}
	if err := repo.Create(ctx, o); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	paidUntil := time.Now().Add(360 * 24 * time.Hour)
	o.Status = order.StatusActive
	o.PaidUntil = &paidUntil
	if err := repo.Update(ctx, o); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != order.StatusActive {
		t.Errorf("Update() status = %v, want active", got.Status)
	}
	if got.PaidUntil == nil || got.PaidUntil.Unix() != paidUntil.Unix() {
		t.Errorf("Update() paid_until not persisted")
	}
}

func TestOrderRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewOrderRepository(db)
	ctx := context.Background()

	orders := []*order.Order{
		{UserID: 1, ServiceType: order.ServiceVPS, InstanceID: 1, PlanID: "vps-basic", BillingCycle: "monthly", TotalIDR: 50000, ReferenceIDR: 50000, Status: order.StatusPending},
		{UserID: 1, ServiceType: order.ServiceHosting, InstanceID: 1, PlanID: "starter", BillingCycle: "monthly", TotalIDR: 15000, ReferenceIDR: 15000, Status: order.StatusActive},
		{UserID: 2, ServiceType: order.ServiceVPS, InstanceID: 2, PlanID: "vps-pro", BillingCycle: "monthly", TotalIDR: 150000, ReferenceIDR: 150000, Status: order.StatusPending},
	}
	for _, o := range orders {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, total, err := repo.List(ctx, order.Filter{UserID: 1}, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Errorf("List() by user total = %v, want 2", total)
	}

	got, total, err = repo.List(ctx, order.Filter{ServiceType: order.ServiceVPS, Status: order.StatusPending}, 20, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 {
		t.Errorf("List() by type+status total = %v, want 2", total)
	}
	_ = got
}

func TestOrderRepository_ListDue(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewOrderRepository(db)
	ctx := context.Background()

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	due := &order.Order{UserID: 1, ServiceType: order.ServiceVPS, InstanceID: 1, PlanID: "vps-basic", BillingCycle: "monthly", TotalIDR: 50000, ReferenceIDR: 50000, Status: order.StatusActive, PaidUntil: &past}
	notDue := &order.Order{UserID: 1, ServiceType: order.ServiceVPS, InstanceID: 2, PlanID: "vps-basic", BillingCycle: "monthly", TotalIDR: 50000, ReferenceIDR: 50000, Status: order.StatusActive, PaidUntil: &future}
	pendingPast := &order.Order{UserID: 1, ServiceType: order.ServiceVPS, InstanceID: 3, PlanID: "vps-basic", BillingCycle: "monthly", TotalIDR: 50000, ReferenceIDR: 50000, Status: order.StatusPending, PaidUntil: &past}

	for _, o := range []*order.Order{due, notDue, pendingPast} {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := repo.ListDue(ctx, 50)
	if err != nil {
		t.Fatalf("ListDue() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListDue() returned %d orders, want 1", len(got))
	}
	if got[0].ID != due.ID {
		t.Errorf("ListDue() returned order %d, want %d", got[0].ID, due.ID)
	}
}
