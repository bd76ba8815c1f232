package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
)

// HostingService implements hosting.Service
type HostingService struct {
	repo    hosting.Repository
	orders  order.Repository
	credits credit.Repository
	logger  *logger.Logger
}

// NewHostingService creates a new hosting service
func NewHostingService(repo hosting.Repository, orders order.Repository, credits credit.Repository, log *logger.Logger) hosting.Service {
	return &HostingService{
		repo:    repo,
		orders:  orders,
		credits: credits,
		logger:  log,
	}
}

// Deploy validates a draft, prices it and creates the pending site plus its
// order
func (s *HostingService) Deploy(ctx context.Context, userID int64, input hosting.DeployInput) (*hosting.Site, *order.Order, error) {
	input.DomainName = strings.TrimSpace(input.DomainName)
	input.AdminEmail = strings.TrimSpace(input.AdminEmail)

	var fieldErrs []string
	if input.DomainName == "" {
		fieldErrs = append(fieldErrs, "domain name is required")
	}
	if input.AdminEmail == "" {
		fieldErrs = append(fieldErrs, "admin email is required")
	}
	if len(fieldErrs) > 0 {
		return nil, nil, errors.ValidationError("Validation failed", fieldErrs)
	}

	plan, ok := catalog.HostingPlanByID(input.PlanID)
	if !ok {
		return nil, nil, errors.BadRequest("Unknown hosting plan")
	}
	if _, ok := catalog.LocationByID(input.LocationID); !ok {
		return nil, nil, errors.BadRequest("Unknown location")
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

	// A draft may carry more subdomains than the selected plan allows, e.g.
	// after switching to a smaller plan. Keep the first entries up to the
	// limit, as the order form does.
	subdomains, err := catalog.FitSubdomains(plan.ID, input.Subdomains)
	if err != nil {
		return nil, nil, errors.BadRequest("Unknown hosting plan")
	}

	quote, err := catalog.PriceQuote(plan.MonthlyPriceIDR, input.BillingCycle)
	if err != nil {
		return nil, nil, errors.BadRequest("Unknown billing cycle")
	}

	if err := chargeCredits(ctx, s.credits, userID, quote.TotalIDR); err != nil {
		return nil, nil, err
	}

	site := &hosting.Site{
		UserID:     userID,
		DomainName: input.DomainName,
		PlanID:     plan.ID,
		LocationID: input.LocationID,
		Subdomains: subdomains,
		Status:     hosting.StatusPending,
	}
	if err := s.repo.Create(ctx, site); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create hosting site")
		return nil, nil, err
	}

	o := &order.Order{
		UserID:       userID,
		ServiceType:  order.ServiceHosting,
		InstanceID:   site.ID,
		PlanID:       plan.ID,
		BillingCycle: string(quote.BillingCycle),
		TotalIDR:     quote.TotalIDR,
		ReferenceIDR: quote.ReferenceIDR,
		Status:       order.StatusPending,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create hosting order")
		return nil, nil, err
	}

	metrics.OrderCreated(order.ServiceHosting, string(quote.BillingCycle))
	s.logger.WithFields(map[string]interface{}{
		"user_id":  userID,
		"site_id":  site.ID,
		"order_id": o.ID,
		"plan_id":  plan.ID,
	}).Info("Hosting deploy order created")

	// A generated admin password is disclosed exactly once, on this response.
	site.AdminPassword = generatedPassword
	return site, o, nil
}

// Get retrieves a site owned by the user
func (s *HostingService) Get(ctx context.Context, userID, id int64) (*hosting.Site, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List retrieves the user's sites
func (s *HostingService) List(ctx context.Context, userID int64, limit, offset int) ([]*hosting.Site, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

// SetSubdomains replaces the subdomain list, enforcing the plan limit
func (s *HostingService) SetSubdomains(ctx context.Context, userID, id int64, subdomains []string) (*hosting.Site, error) {
	site, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	plan, ok := catalog.HostingPlanByID(site.PlanID)
	if !ok {
		return nil, errors.Internal("Site references an unknown plan", nil)
	}
	if len(subdomains) > plan.SubdomainLimit {
		return nil, errors.ValidationError("Validation failed",
			[]string{"plan allows at most " + strconv.Itoa(plan.SubdomainLimit) + " subdomains"})
	}

	site.Subdomains = subdomains
	if err := s.repo.Update(ctx, site); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update subdomains")
		return nil, err
	}
	return site, nil
}

// Delete removes a site
func (s *HostingService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"site_id": id}).Info("Hosting site deleted")
	return nil
}
