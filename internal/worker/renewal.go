// Package worker runs background jobs alongside the API server.
package worker

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/pkg/logger"
)

// scanBatchSize bounds one scan pass; overdue orders beyond it are picked
// up on the next tick.
const scanBatchSize = 200

// RenewalScanner periodically expires active orders whose paid period has
// lapsed, suspending the backing instance.
type RenewalScanner struct {
	orders    order.Service
	orderRepo order.Repository
	schedule  string
	scheduler *cron.Cron
	logger    *logger.Logger
}

// NewRenewalScanner creates a renewal scanner with a standard cron schedule
func NewRenewalScanner(orders order.Service, orderRepo order.Repository, schedule string, log *logger.Logger) (*RenewalScanner, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid renewal cron schedule: %w", err)
	}
	return &RenewalScanner{
		orders:    orders,
		orderRepo: orderRepo,
		schedule:  schedule,
		logger:    log,
	}, nil
}

// Start schedules the scanner. It returns immediately; scans run on the
// cron goroutine.
func (s *RenewalScanner) Start() error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.schedule, func() {
		if err := s.Scan(context.Background()); err != nil {
			s.logger.ErrorWithErr(err, "Renewal scan failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule renewal scan: %w", err)
	}
	s.scheduler.Start()

	s.logger.WithFields(map[string]interface{}{
		"schedule": s.schedule,
	}).Info("Renewal scanner started")
	return nil
}

// Stop stops the scheduler, waiting for a running scan to finish
func (s *RenewalScanner) Stop() {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
}

// Scan expires every due order once. Failures on individual orders are
// logged and do not abort the pass.
func (s *RenewalScanner) Scan(ctx context.Context) error {
	due, err := s.orderRepo.ListDue(ctx, scanBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list due orders: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	expired := 0
	for _, o := range due {
		if err := s.orders.MarkExpired(ctx, o.ID); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"order_id": o.ID,
				"error":    err.Error(),
			}).Warn("Failed to expire order")
			continue
		}
		expired++
	}

	s.logger.WithFields(map[string]interface{}{
		"due":     len(due),
		"expired": expired,
	}).Info("Renewal scan completed")
	return nil
}
