package services

import (
	"context"
	"strings"
	"time"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/automation"
	"github.com/belajarhosting/platform/internal/domain/database"
	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
)

// OrderService implements order.Service for the admin back-office
type OrderService struct {
	repo        order.Repository
	vpsRepo     vps.Repository
	hostingRepo hosting.Repository
	dbRepo      database.Repository
	autoRepo    automation.Repository
	monthlyTerm time.Duration
	yearlyTerm  time.Duration
	logger      *logger.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	repo order.Repository,
	vpsRepo vps.Repository,
	hostingRepo hosting.Repository,
	dbRepo database.Repository,
	autoRepo automation.Repository,
	monthlyTerm, yearlyTerm time.Duration,
	log *logger.Logger,
) order.Service {
	return &OrderService{
		repo:        repo,
		vpsRepo:     vpsRepo,
		hostingRepo: hostingRepo,
		dbRepo:      dbRepo,
		autoRepo:    autoRepo,
		monthlyTerm: monthlyTerm,
		yearlyTerm:  yearlyTerm,
		logger:      log,
	}
}

// Get retrieves a single order
func (s *OrderService) Get(ctx context.Context, id int64) (*order.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves orders matching the filter
func (s *OrderService) List(ctx context.Context, filter order.Filter, limit, offset int) ([]*order.Order, int64, error) {
	return s.repo.List(ctx, filter, limit, offset)
}

// UpdateStatus moves an order between statuses
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case order.StatusPending, order.StatusActive, order.StatusCancelled, order.StatusExpired:
	default:
		return errors.BadRequest("Unknown order status")
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	o.Status = status
	if err := s.repo.Update(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update order status")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"order_id": id,
		"status":   status,
	}).Info("Order status updated")
	return nil
}

// Fulfill completes provisioning for a pending order. The admin enters the
// provisioning result; the instance goes active and the order's paid period
// starts now.
func (s *OrderService) Fulfill(ctx context.Context, id int64, input order.FulfillInput) (*order.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != order.StatusPending {
		return nil, errors.InvalidState("Order is " + o.Status + ", expected pending")
	}

	switch o.ServiceType {
	case order.ServiceVPS:
		if strings.TrimSpace(input.IPAddress) == "" {
			return nil, errors.ValidationError("Validation failed", []string{"ip address is required for VPS fulfillment"})
		}
		inst, err := s.vpsRepo.GetAnyByID(ctx, o.InstanceID)
		if err != nil {
			return nil, err
		}
		inst.IPAddress = strings.TrimSpace(input.IPAddress)
		inst.Status = vps.StatusActive
		if err := s.vpsRepo.Update(ctx, inst); err != nil {
			return nil, err
		}

	case order.ServiceHosting:
		site, err := s.hostingRepo.GetAnyByID(ctx, o.InstanceID)
		if err != nil {
			return nil, err
		}
		if input.URL != "" {
			site.URL = input.URL
		}
		site.Status = hosting.StatusActive
		if err := s.hostingRepo.Update(ctx, site); err != nil {
			return nil, err
		}

	case order.ServiceDatabase:
		inst, err := s.dbRepo.GetAnyByID(ctx, o.InstanceID)
		if err != nil {
			return nil, err
		}
		if input.Host != "" {
			inst.Host = input.Host
		}
		if input.Port != 0 {
			inst.Port = input.Port
		}
		inst.Status = database.StatusActive
		if err := s.dbRepo.Update(ctx, inst); err != nil {
			return nil, err
		}

	case order.ServiceAutomation:
		inst, err := s.autoRepo.GetAnyByID(ctx, o.InstanceID)
		if err != nil {
			return nil, err
		}
		if input.URL != "" {
			inst.URL = input.URL
		} else {
			inst.URL = "https://" + inst.Subdomain + ".belajarhosting.app"
		}
		inst.Status = automation.StatusActive
		if err := s.autoRepo.Update(ctx, inst); err != nil {
			return nil, err
		}

	default:
		return nil, errors.Internal("Order references an unknown service type", nil)
	}

	term := s.monthlyTerm
	if catalog.BillingCycle(o.BillingCycle) == catalog.BillingYearly {
		term = s.yearlyTerm
	}
	paidUntil := time.Now().Add(term)

	o.Status = order.StatusActive
	o.PaidUntil = &paidUntil
	if err := s.repo.Update(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to activate order")
		return nil, err
	}

	metrics.OrderFulfilled(o.ServiceType)
	s.logger.WithFields(map[string]interface{}{
		"order_id":   o.ID,
		"service":    o.ServiceType,
		"paid_until": paidUntil,
	}).Info("Order fulfilled")

	return o, nil
}

// MarkExpired expires an active order past its paid period and suspends the
// backing instance
func (s *OrderService) MarkExpired(ctx context.Context, id int64) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.Status != order.StatusActive {
		return errors.InvalidState("Order is " + o.Status + ", expected active")
	}

	switch o.ServiceType {
	case order.ServiceVPS:
		if inst, err := s.vpsRepo.GetAnyByID(ctx, o.InstanceID); err == nil {
			inst.Status = vps.StatusSuspended
			if err := s.vpsRepo.Update(ctx, inst); err != nil {
				s.logger.ErrorWithErr(err, "Failed to suspend VPS")
			}
		}
	case order.ServiceHosting:
		if site, err := s.hostingRepo.GetAnyByID(ctx, o.InstanceID); err == nil {
			site.Status = hosting.StatusSuspended
			if err := s.hostingRepo.Update(ctx, site); err != nil {
				s.logger.ErrorWithErr(err, "Failed to suspend hosting site")
			}
		}
	case order.ServiceDatabase:
		if inst, err := s.dbRepo.GetAnyByID(ctx, o.InstanceID); err == nil {
			inst.Status = database.StatusSuspended
			if err := s.dbRepo.Update(ctx, inst); err != nil {
				s.logger.ErrorWithErr(err, "Failed to suspend database")
			}
		}
	case order.ServiceAutomation:
		if inst, err := s.autoRepo.GetAnyByID(ctx, o.InstanceID); err == nil {
			inst.Status = automation.StatusSuspended
			if err := s.autoRepo.Update(ctx, inst); err != nil {
				s.logger.ErrorWithErr(err, "Failed to suspend automation instance")
			}
		}
	}

	o.Status = order.StatusExpired
	if err := s.repo.Update(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to expire order")
		return err
	}

	metrics.InstanceSuspended()
	s.logger.WithFields(map[string]interface{}{
		"order_id": o.ID,
		"service":  o.ServiceType,
	}).Info("Order expired")
	return nil
}
