package worker

import (
	"context"
	"testing"
	"time"

	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/services"
	"github.com/belajarhosting/platform/internal/testutil"
)

type scannerFixture struct {
	orders  *testutil.MockOrderRepository
	vps     *testutil.MockVPSRepository
	scanner *RenewalScanner
}

func newScannerFixture(t *testing.T) *scannerFixture {
	t.Helper()

	f := &scannerFixture{
		orders: testutil.NewMockOrderRepository(),
		vps:    testutil.NewMockVPSRepository(),
	}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := services.NewOrderService(
		f.orders, f.vps,
		testutil.NewMockHostingRepository(),
		testutil.NewMockDatabaseRepository(),
		testutil.NewMockAutomationRepository(),
		30*24*time.Hour, 360*24*time.Hour, log,
	)

	scanner, err := NewRenewalScanner(svc, f.orders, "0 * * * *", log)
	if err != nil {
		t.Fatalf("NewRenewalScanner() error = %v", err)
	}
	f.scanner = scanner
	return f
}

func (f *scannerFixture) addOrder(ctx context.Context, t *testing.T, status string, paidUntil time.Time) *order.Order {
	t.Helper()

	inst := &vps.Instance{UserID: 1, Hostname: "web-1", PlanID: "vps-basic", Status: vps.StatusActive}
	if err := f.vps.Create(ctx, inst); err != nil {
		t.Fatalf("Create instance error = %v", err)
	}

	o := &order.Order{
		UserID:       1,
		ServiceType:  order.ServiceVPS,
		InstanceID:   inst.ID,
		PlanID:       "vps-basic",
		BillingCycle: "monthly",
		TotalIDR:     50000,
		ReferenceIDR: 50000,
		Status:       status,
		PaidUntil:    &paidUntil,
	}
	if err := f.orders.Create(ctx, o); err != nil {
		t.Fatalf("Create order error = %v", err)
	}
	return o
}

func TestRenewalScanner_ExpiresDueOrders(t *testing.T) {
	f := newScannerFixture(t)
	ctx := context.Background()

	due := f.addOrder(ctx, t, order.StatusActive, time.Now().Add(-time.Hour))
	current := f.addOrder(ctx, t, order.StatusActive, time.Now().Add(24*time.Hour))

	if err := f.scanner.Scan(ctx); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if got := f.orders.Orders[due.ID].Status; got != order.StatusExpired {
		t.Errorf("due order status = %v, want expired", got)
	}
	if got := f.vps.Instances[due.InstanceID].Status; got != vps.StatusSuspended {
		t.Errorf("due instance status = %v, want suspended", got)
	}

	if got := f.orders.Orders[current.ID].Status; got != order.StatusActive {
		t.Errorf("current order status = %v, want active", got)
	}
	if got := f.vps.Instances[current.InstanceID].Status; got != vps.StatusActive {
		t.Errorf("current instance status = %v, want active", got)
	}
}

func TestRenewalScanner_EmptyScan(t *testing.T) {
	f := newScannerFixture(t)

	if err := f.scanner.Scan(context.Background()); err != nil {
		t.Errorf("Scan() on empty set error = %v", err)
	}
}

func TestRenewalScanner_ScanIsIdempotent(t *testing.T) {
	f := newScannerFixture(t)
	ctx := context.Background()

	due := f.addOrder(ctx, t, order.StatusActive, time.Now().Add(-time.Hour))

	if err := f.scanner.Scan(ctx); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	// Expired orders drop out of the due set; a second pass is a no-op
	if err := f.scanner.Scan(ctx); err != nil {
		t.Fatalf("second Scan() error = %v", err)
	}

	if got := f.orders.Orders[due.ID].Status; got != order.StatusExpired {
		t.Errorf("order status = %v, want expired", got)
	}
}

func TestNewRenewalScanner_RejectsBadSchedule(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	_, err := NewRenewalScanner(nil, nil, "not a schedule", log)
	if err == nil {
		t.Error("NewRenewalScanner() with bad schedule should fail")
	}
}
