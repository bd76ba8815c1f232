package services

import (
	"context"
	"strings"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
)

// VPSService implements vps.Service
type VPSService struct {
	repo    vps.Repository
	orders  order.Repository
	credits credit.Repository
	logger  *logger.Logger
}

// NewVPSService creates a new VPS service
func NewVPSService(repo vps.Repository, orders order.Repository, credits credit.Repository, log *logger.Logger) vps.Service {
	return &VPSService{
		repo:    repo,
		orders:  orders,
		credits: credits,
		logger:  log,
	}
}

// Deploy validates a draft, prices it and creates the pending instance plus
// its order. The charged total comes from the catalog, never the caller.
func (s *VPSService) Deploy(ctx context.Context, userID int64, input vps.DeployInput) (*vps.Instance, *order.Order, error) {
	input.Hostname = strings.TrimSpace(input.Hostname)
	if input.Hostname == "" {
		return nil, nil, errors.ValidationError("Validation failed", []string{"hostname is required"})
	}

	plan, ok := catalog.VPSPlanByID(input.PlanID)
	if !ok {
		return nil, nil, errors.BadRequest("Unknown VPS plan")
	}
	if _, ok := catalog.LocationByID(input.LocationID); !ok {
		return nil, nil, errors.BadRequest("Unknown location")
	}
	if _, ok := catalog.ImageByID(input.ImageID); !ok {
		return nil, nil, errors.BadRequest("Unknown OS image")
	}

	var generatedPassword string
	if input.RootPassword == "" {
		generated, err := generatePassword(16)
		if err != nil {
			return nil, nil, errors.Internal("Failed to generate password", err)
		}
		generatedPassword = generated
	} else if len(input.RootPassword) < 8 {
		return nil, nil, errors.ValidationError("Validation failed", []string{"root password must be at least 8 characters"})
	}

	quote, err := catalog.PriceQuote(plan.MonthlyPriceIDR, input.BillingCycle)
	if err != nil {
		return nil, nil, errors.BadRequest("Unknown billing cycle")
	}

	if err := s.chargeCredits(ctx, userID, quote.TotalIDR); err != nil {
		return nil, nil, err
	}

	inst := &vps.Instance{
		UserID:     userID,
		Hostname:   input.Hostname,
		PlanID:     plan.ID,
		LocationID: input.LocationID,
		ImageID:    input.ImageID,
		Status:     vps.StatusPending,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create VPS instance")
		return nil, nil, err
	}

	o := &order.Order{
		UserID:       userID,
		ServiceType:  order.ServiceVPS,
		InstanceID:   inst.ID,
		PlanID:       plan.ID,
		BillingCycle: string(quote.BillingCycle),
		TotalIDR:     quote.TotalIDR,
		ReferenceIDR: quote.ReferenceIDR,
		Status:       order.StatusPending,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create VPS order")
		return nil, nil, err
	}

	metrics.OrderCreated(order.ServiceVPS, string(quote.BillingCycle))
	s.logger.WithFields(map[string]interface{}{
		"user_id":  userID,
		"vps_id":   inst.ID,
		"order_id": o.ID,
		"plan_id":  plan.ID,
		"total":    quote.TotalIDR,
	}).Info("VPS deploy order created")

	// A generated root password is disclosed exactly once, on this response.
	inst.RootPassword = generatedPassword
	return inst, o, nil
}

// chargeCredits deducts the order total from the user's credit balance and
// records a settled ledger entry.
func (s *VPSService) chargeCredits(ctx context.Context, userID, totalIDR int64) error {
	return chargeCredits(ctx, s.credits, userID, totalIDR)
}

// Get retrieves an instance owned by the user
func (s *VPSService) Get(ctx context.Context, userID, id int64) (*vps.Instance, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List retrieves the user's instances
func (s *VPSService) List(ctx context.Context, userID int64, limit, offset int) ([]*vps.Instance, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

// Start powers on a stopped instance
func (s *VPSService) Start(ctx context.Context, userID, id int64) error {
	return s.transition(ctx, userID, id, vps.StatusStopped, vps.StatusActive)
}

// Stop powers off an active instance
func (s *VPSService) Stop(ctx context.Context, userID, id int64) error {
	return s.transition(ctx, userID, id, vps.StatusActive, vps.StatusStopped)
}

// Restart reboots an active instance. The state does not change; the call is
// forwarded to the provisioner.
func (s *VPSService) Restart(ctx context.Context, userID, id int64) error {
	inst, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if inst.Status != vps.StatusActive {
		return errors.InvalidState("Instance must be active to restart")
	}
	s.logger.WithFields(map[string]interface{}{"vps_id": id}).Info("VPS restart requested")
	return nil
}

// Reinstall wipes the instance with a fresh image and root password
func (s *VPSService) Reinstall(ctx context.Context, userID, id int64, input vps.ReinstallInput) error {
	inst, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if inst.Status != vps.StatusActive && inst.Status != vps.StatusStopped {
		return errors.InvalidState("Instance cannot be reinstalled in its current state")
	}
	if _, ok := catalog.ImageByID(input.ImageID); !ok {
		return errors.BadRequest("Unknown OS image")
	}
	if input.RootPassword != "" && len(input.RootPassword) < 8 {
		return errors.ValidationError("Validation failed", []string{"root password must be at least 8 characters"})
	}

	inst.ImageID = input.ImageID
	inst.Status = vps.StatusActive
	if err := s.repo.Update(ctx, inst); err != nil {
		s.logger.ErrorWithErr(err, "Failed to reinstall VPS")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"vps_id": id,
		"image":  input.ImageID,
	}).Info("VPS reinstalled")
	return nil
}

// Terminate removes the instance
func (s *VPSService) Terminate(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"vps_id": id}).Info("VPS terminated")
	return nil
}

func (s *VPSService) transition(ctx context.Context, userID, id int64, from, to string) error {
	inst, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if inst.Status != from {
		return errors.InvalidState("Instance is " + inst.Status + ", expected " + from)
	}
	inst.Status = to
	if err := s.repo.Update(ctx, inst); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update VPS status")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"vps_id": id,
		"status": to,
	}).Info("VPS status changed")
	return nil
}
