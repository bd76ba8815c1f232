package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// OrderRepository implements order.Repository
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) order.Repository {
	return &OrderRepository{db: db}
}

const orderColumns = "id, user_id, service_type, instance_id, plan_id, billing_cycle, total_idr, reference_idr, status, paid_until, created_at, updated_at"

func scanOrder(scan func(dest ...interface{}) error) (*order.Order, error) {
	var o order.Order
	var paidUntil sql.NullInt64
	var createdAt, updatedAt int64

	err := scan(
		&o.ID, &o.UserID, &o.ServiceType, &o.InstanceID, &o.PlanID, &o.BillingCycle,
		&o.TotalIDR, &o.ReferenceIDR, &o.Status, &paidUntil, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paidUntil.Valid {
		t := time.Unix(paidUntil.Int64, 0)
		o.PaidUntil = &t
	}
	o.CreatedAt = time.Unix(createdAt, 0)
	o.UpdatedAt = time.Unix(updatedAt, 0)
	return &o, nil
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	query := `
		INSERT INTO orders (user_id, service_type, instance_id, plan_id, billing_cycle, total_idr, reference_idr, status, paid_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var paidUntil sql.NullInt64
	if o.PaidUntil != nil {
		paidUntil = sql.NullInt64{Int64: o.PaidUntil.Unix(), Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		o.UserID, o.ServiceType, o.InstanceID, o.PlanID, o.BillingCycle,
		o.TotalIDR, o.ReferenceIDR, o.Status, paidUntil, now.Unix(), now.Unix(),
	).Scan(&o.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create order", err)
	}
	return nil
}

// GetByID retrieves an order
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	o, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Order")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get order", err)
	}
	return o, nil
}

// Update updates an order
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	o.UpdatedAt = time.Now()

	var paidUntil sql.NullInt64
	if o.PaidUntil != nil {
		paidUntil = sql.NullInt64{Int64: o.PaidUntil.Unix(), Valid: true}
	}

	query := `
		UPDATE orders
		SET status = $1, paid_until = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, o.Status, paidUntil, o.UpdatedAt.Unix(), o.ID)
	if err != nil {
		return errors.DatabaseError("Failed to update order", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Order")
	}
	return nil
}

// List retrieves orders matching the filter with pagination
func (r *OrderRepository) List(ctx context.Context, filter order.Filter, limit, offset int) ([]*order.Order, int64, error) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.ServiceType != "" {
		args = append(args, filter.ServiceType)
		where += fmt.Sprintf(" AND service_type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count orders", err)
	}

	query := fmt.Sprintf("SELECT %s FROM orders%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		orderColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate orders", err)
	}

	return orders, total, nil
}

// ListDue returns active orders whose paid period has lapsed
func (r *OrderRepository) ListDue(ctx context.Context, limit int) ([]*order.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE status = $1 AND paid_until IS NOT NULL AND paid_until < $2
		ORDER BY paid_until ASC LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, order.StatusActive, time.Now().Unix(), limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list due orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate due orders", err)
	}

	return orders, nil
}
