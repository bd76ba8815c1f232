package services

import (
	"context"
	"strings"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/automation"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
)

// AutomationService implements automation.Service
type AutomationService struct {
	repo    automation.Repository
	orders  order.Repository
	credits credit.Repository
	logger  *logger.Logger
}

// NewAutomationService creates a new automation service
func NewAutomationService(repo automation.Repository, orders order.Repository, credits credit.Repository, log *logger.Logger) automation.Service {
	return &AutomationService{
		repo:    repo,
		orders:  orders,
		credits: credits,
		logger:  log,
	}
}

// Deploy validates a draft, prices it and creates the pending instance plus
// its order
func (s *AutomationService) Deploy(ctx context.Context, userID int64, input automation.DeployInput) (*automation.Instance, *order.Order, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Subdomain = strings.ToLower(strings.TrimSpace(input.Subdomain))
	input.AdminEmail = strings.TrimSpace(input.AdminEmail)

	var fieldErrs []string
	if input.Name == "" {
		fieldErrs = append(fieldErrs, "instance name is required")
	}
	if input.Subdomain == "" {
		fieldErrs = append(fieldErrs, "subdomain is required")
	}
	if input.AdminEmail == "" {
		fieldErrs = append(fieldErrs, "admin email is required")
	}
	if len(fieldErrs) > 0 {
		return nil, nil, errors.ValidationError("Validation failed", fieldErrs)
	}

	plan, ok := catalog.AutomationPlanByID(input.PlanID)
	if !ok {
		return nil, nil, errors.BadRequest("Unknown automation plan")
	}
	if _, ok := catalog.LocationByID(input.LocationID); !ok {
		return nil, nil, errors.BadRequest("Unknown location")
	}

	if existing, err := s.repo.GetBySubdomain(ctx, input.Subdomain); err == nil && existing != nil {
		return nil, nil, errors.Conflict("Subdomain is already taken")
	}

	var generatedPassword string
	if input.AdminPassword == "" {
		generated, err := generatePassword(16)
		if err != nil {
			return nil, nil, errors.Internal("Failed to generate password", err)
		}
		generatedPassword = generated
	} else if len(input.AdminPassword) < 8 {
		return nil, nil, errors.ValidationError("Validation failed", []string{"admin password must be at least 8 characters"})
	}

	quote, err := catalog.PriceQuote(plan.MonthlyPriceIDR, input.BillingCycle)
	if err != nil {
		return nil, nil, errors.BadRequest("Unknown billing cycle")
	}

	if err := chargeCredits(ctx, s.credits, userID, quote.TotalIDR); err != nil {
		return nil, nil, err
	}

	inst := &automation.Instance{
		UserID:     userID,
		Name:       input.Name,
		Subdomain:  input.Subdomain,
		PlanID:     plan.ID,
		LocationID: input.LocationID,
		Status:     automation.StatusPending,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create automation instance")
		return nil, nil, err
	}

	o := &order.Order{
		UserID:       userID,
		ServiceType:  order.ServiceAutomation,
		InstanceID:   inst.ID,
		PlanID:       plan.ID,
		BillingCycle: string(quote.BillingCycle),
		TotalIDR:     quote.TotalIDR,
		ReferenceIDR: quote.ReferenceIDR,
		Status:       order.StatusPending,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create automation order")
		return nil, nil, err
	}

	metrics.OrderCreated(order.ServiceAutomation, string(quote.BillingCycle))
	s.logger.WithFields(map[string]interface{}{
		"user_id":   userID,
		"n8n_id":    inst.ID,
		"order_id":  o.ID,
		"subdomain": inst.Subdomain,
	}).Info("Automation deploy order created")

	// A generated admin password is disclosed exactly once, on this response.
	inst.AdminPassword = generatedPassword
	return inst, o, nil
}

// Get retrieves an instance owned by the user
func (s *AutomationService) Get(ctx context.Context, userID, id int64) (*automation.Instance, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List retrieves the user's instances
func (s *AutomationService) List(ctx context.Context, userID int64, limit, offset int) ([]*automation.Instance, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

// Delete removes an instance
func (s *AutomationService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"n8n_id": id}).Info("Automation instance deleted")
	return nil
}
