package services

import (
	"context"
	"testing"
	"time"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

type orderFixture struct {
	orders  *testutil.MockOrderRepository
	vps     *testutil.MockVPSRepository
	hosting *testutil.MockHostingRepository
	db      *testutil.MockDatabaseRepository
	auto    *testutil.MockAutomationRepository
	credits *testutil.MockCreditRepository
	svc     order.Service
	vpsSvc  vps.Service
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:  testutil.NewMockOrderRepository(),
		vps:     testutil.NewMockVPSRepository(),
		hosting: testutil.NewMockHostingRepository(),
		db:      testutil.NewMockDatabaseRepository(),
		auto:    testutil.NewMockAutomationRepository(),
		credits: testutil.NewMockCreditRepository(),
	}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	f.svc = NewOrderService(f.orders, f.vps, f.hosting, f.db, f.auto,
		30*24*time.Hour, 360*24*time.Hour, log)
	f.vpsSvc = NewVPSService(f.vps, f.orders, f.credits, log)
	return f
}

func (f *orderFixture) deployVPS(t *testing.T, cycle catalog.BillingCycle) (*vps.Instance, *order.Order) {
	t.Helper()
	f.credits.Balances[1] = 10000000
	inst, o, err := f.vpsSvc.Deploy(context.Background(), 1, vps.DeployInput{
		Hostname:     "fulfill-me",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: cycle,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	return inst, o
}

func TestOrderService_Fulfill_VPSRequiresIP(t *testing.T) {
	f := newOrderFixture()
	_, o := f.deployVPS(t, catalog.BillingMonthly)

	_, err := f.svc.Fulfill(context.Background(), o.ID, order.FulfillInput{})
	if err == nil {
		t.Fatal("Fulfill() without IP should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeValidation {
		t.Errorf("Fulfill() error = %v, want validation error", err)
	}

	// The order must stay pending after the failed attempt
	got, _ := f.orders.GetByID(context.Background(), o.ID)
	if got.Status != order.StatusPending {
		t.Errorf("Fulfill() order status = %v, want pending", got.Status)
	}
}

func TestOrderService_Fulfill_VPS(t *testing.T) {
	f := newOrderFixture()
	inst, o := f.deployVPS(t, catalog.BillingMonthly)

	fulfilled, err := f.svc.Fulfill(context.Background(), o.ID, order.FulfillInput{IPAddress: "103.10.20.30"})
	if err != nil {
		t.Fatalf("Fulfill() error = %v", err)
	}

	if fulfilled.Status != order.StatusActive {
		t.Errorf("Fulfill() order status = %v, want active", fulfilled.Status)
	}
	if fulfilled.PaidUntil == nil {
		t.Fatal("Fulfill() paid_until not set")
	}
	remaining := time.Until(*fulfilled.PaidUntil)
	if remaining < 29*24*time.Hour || remaining > 31*24*time.Hour {
		t.Errorf("Fulfill() paid_until %v from now, want ~30 days", remaining)
	}

	got := f.vps.Instances[inst.ID]
	if got.Status != vps.StatusActive {
		t.Errorf("Fulfill() instance status = %v, want active", got.Status)
	}
	if got.IPAddress != "103.10.20.30" {
		t.Errorf("Fulfill() ip = %v, want 103.10.20.30", got.IPAddress)
	}
}

func TestOrderService_Fulfill_YearlyTerm(t *testing.T) {
	f := newOrderFixture()
	_, o := f.deployVPS(t, catalog.BillingYearly)

	fulfilled, err := f.svc.Fulfill(context.Background(), o.ID, order.FulfillInput{IPAddress: "103.10.20.31"})
	if err != nil {
		t.Fatalf("Fulfill() error = %v", err)
	}
	remaining := time.Until(*fulfilled.PaidUntil)
	if remaining < 359*24*time.Hour || remaining > 361*24*time.Hour {
		t.Errorf("Fulfill() paid_until %v from now, want ~360 days", remaining)
	}
}

func TestOrderService_Fulfill_AlreadyActive(t *testing.T) {
	f := newOrderFixture()
	_, o := f.deployVPS(t, catalog.BillingMonthly)

	if _, err := f.svc.Fulfill(context.Background(), o.ID, order.FulfillInput{IPAddress: "103.10.20.32"}); err != nil {
		t.Fatalf("Fulfill() error = %v", err)
	}
	if _, err := f.svc.Fulfill(context.Background(), o.ID, order.FulfillInput{IPAddress: "103.10.20.32"}); err == nil {
		t.Error("Fulfill() on an active order should fail")
	}
}

func TestOrderService_MarkExpired(t *testing.T) {
	f := newOrderFixture()
	inst, o := f.deployVPS(t, catalog.BillingMonthly)

	if _, err := f.svc.Fulfill(context.Background(), o.ID, order.FulfillInput{IPAddress: "103.10.20.33"}); err != nil {
		t.Fatalf("Fulfill() error = %v", err)
	}

	if err := f.svc.MarkExpired(context.Background(), o.ID); err != nil {
		t.Fatalf("MarkExpired() error = %v", err)
	}

	got, _ := f.orders.GetByID(context.Background(), o.ID)
	if got.Status != order.StatusExpired {
		t.Errorf("MarkExpired() order status = %v, want expired", got.Status)
	}
	if f.vps.Instances[inst.ID].Status != vps.StatusSuspended {
		t.Errorf("MarkExpired() instance status = %v, want suspended", f.vps.Instances[inst.ID].Status)
	}

	// Expiring twice is invalid
	if err := f.svc.MarkExpired(context.Background(), o.ID); err == nil {
		t.Error("MarkExpired() on an expired order should fail")
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := newOrderFixture()
	_, o := f.deployVPS(t, catalog.BillingMonthly)

	if err := f.svc.UpdateStatus(context.Background(), o.ID, order.StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	got, _ := f.orders.GetByID(context.Background(), o.ID)
	if got.Status != order.StatusCancelled {
		t.Errorf("UpdateStatus() status = %v, want cancelled", got.Status)
	}

	if err := f.svc.UpdateStatus(context.Background(), o.ID, "bogus"); err == nil {
		t.Error("UpdateStatus() with unknown status should fail")
	}
}
