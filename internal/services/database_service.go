package services

import (
	"context"
	"strings"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/domain/database"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
)

// DatabaseService implements database.Service
type DatabaseService struct {
	repo    database.Repository
	orders  order.Repository
	credits credit.Repository
	logger  *logger.Logger
}

// NewDatabaseService creates a new managed database service
func NewDatabaseService(repo database.Repository, orders order.Repository, credits credit.Repository, log *logger.Logger) database.Service {
	return &DatabaseService{
		repo:    repo,
		orders:  orders,
		credits: credits,
		logger:  log,
	}
}

// Deploy validates a draft, prices it and creates the pending instance plus
// its order
func (s *DatabaseService) Deploy(ctx context.Context, userID int64, input database.DeployInput) (*database.Instance, *order.Order, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.DatabaseName = strings.TrimSpace(input.DatabaseName)
	input.DatabaseUser = strings.TrimSpace(input.DatabaseUser)

	var fieldErrs []string
	if input.Name == "" {
		fieldErrs = append(fieldErrs, "instance name is required")
	}
	if input.DatabaseName == "" {
		fieldErrs = append(fieldErrs, "database name is required")
	}
	if input.DatabaseUser == "" {
		fieldErrs = append(fieldErrs, "database user is required")
	}
	if len(fieldErrs) > 0 {
		return nil, nil, errors.ValidationError("Validation failed", fieldErrs)
	}

	// A version carried over from a previously selected engine resets to the
	// new engine's first listed version.
	version, err := catalog.ResolveEngineVersion(input.EngineID, input.Version)
	if err != nil {
		return nil, nil, errors.BadRequest("Unknown database engine")
	}

	plan, ok := catalog.DatabasePlanByID(input.PlanID)
	if !ok {
		return nil, nil, errors.BadRequest("Unknown database plan")
	}
	if _, ok := catalog.LocationByID(input.LocationID); !ok {
		return nil, nil, errors.BadRequest("Unknown location")
	}

	var generatedPassword string
	if input.Password == "" {
		generated, err := generatePassword(16)
		if err != nil {
			return nil, nil, errors.Internal("Failed to generate password", err)
		}
		generatedPassword = generated
	} else if len(input.Password) < 8 {
		return nil, nil, errors.ValidationError("Validation failed", []string{"password must be at least 8 characters"})
	}

	quote, err := catalog.PriceQuote(plan.MonthlyPriceIDR, input.BillingCycle)
	if err != nil {
		return nil, nil, errors.BadRequest("Unknown billing cycle")
	}

	if err := chargeCredits(ctx, s.credits, userID, quote.TotalIDR); err != nil {
		return nil, nil, err
	}

	inst := &database.Instance{
		UserID:       userID,
		Name:         input.Name,
		EngineID:     input.EngineID,
		Version:      version,
		PlanID:       plan.ID,
		LocationID:   input.LocationID,
		DatabaseName: input.DatabaseName,
		DatabaseUser: input.DatabaseUser,
		Status:       database.StatusPending,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create database instance")
		return nil, nil, err
	}

	o := &order.Order{
		UserID:       userID,
		ServiceType:  order.ServiceDatabase,
		InstanceID:   inst.ID,
		PlanID:       plan.ID,
		BillingCycle: string(quote.BillingCycle),
		TotalIDR:     quote.TotalIDR,
		ReferenceIDR: quote.ReferenceIDR,
		Status:       order.StatusPending,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create database order")
		return nil, nil, err
	}

	metrics.OrderCreated(order.ServiceDatabase, string(quote.BillingCycle))
	s.logger.WithFields(map[string]interface{}{
		"user_id":  userID,
		"db_id":    inst.ID,
		"order_id": o.ID,
		"engine":   inst.EngineID,
		"version":  inst.Version,
	}).Info("Database deploy order created")

	// A generated password is disclosed exactly once, on this response.
	inst.Password = generatedPassword
	return inst, o, nil
}

// Get retrieves an instance owned by the user
func (s *DatabaseService) Get(ctx context.Context, userID, id int64) (*database.Instance, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List retrieves the user's instances
func (s *DatabaseService) List(ctx context.Context, userID int64, limit, offset int) ([]*database.Instance, int64, error) {
	return s.repo.List(ctx, userID, limit, offset)
}

// Delete removes an instance
func (s *DatabaseService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.WithFields(map[string]interface{}{"db_id": id}).Info("Database instance deleted")
	return nil
}
