package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/belajarhosting/platform/internal/domain/automation"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// AutomationRepository implements automation.Repository
type AutomationRepository struct {
	db *sql.DB
}

// NewAutomationRepository creates a new automation repository
func NewAutomationRepository(db *sql.DB) automation.Repository {
	return &AutomationRepository{db: db}
}

const automationColumns = "id, user_id, name, subdomain, plan_id, location_id, status, url, created_at, updated_at"

func scanAutomation(scan func(dest ...interface{}) error) (*automation.Instance, error) {
	var inst automation.Instance
	var url sql.NullString
	var createdAt, updatedAt int64

	err := scan(
		&inst.ID, &inst.UserID, &inst.Name, &inst.Subdomain, &inst.PlanID,
		&inst.LocationID, &inst.Status, &url, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if url.Valid {
		inst.URL = url.String
	}
	inst.CreatedAt = time.Unix(createdAt, 0)
	inst.UpdatedAt = time.Unix(updatedAt, 0)
	return &inst, nil
}

// Create creates a new automation instance
func (r *AutomationRepository) Create(ctx context.Context, inst *automation.Instance) error {
	now := time.Now()
	inst.CreatedAt = now
	inst.UpdatedAt = now

	query := `
		INSERT INTO automation_instances (user_id, name, subdomain, plan_id, location_id, status, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		inst.UserID, inst.Name, inst.Subdomain, inst.PlanID, inst.LocationID,
		inst.Status, inst.URL, now.Unix(), now.Unix(),
	).Scan(&inst.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create automation instance", err)
	}
	return nil
}

// GetByID retrieves an instance scoped to its owner
func (r *AutomationRepository) GetByID(ctx context.Context, userID, id int64) (*automation.Instance, error) {
	query := `SELECT ` + automationColumns + ` FROM automation_instances WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	inst, err := scanAutomation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Automation instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get automation instance", err)
	}
	return inst, nil
}

// GetBySubdomain retrieves an instance by its unique subdomain
func (r *AutomationRepository) GetBySubdomain(ctx context.Context, subdomain string) (*automation.Instance, error) {
	query := `SELECT ` + automationColumns + ` FROM automation_instances WHERE subdomain = $1`

	row := r.db.QueryRowContext(ctx, query, subdomain)
	inst, err := scanAutomation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Automation instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get automation instance", err)
	}
	return inst, nil
}

// GetAnyByID fetches without an owner check, for admin fulfillment
func (r *AutomationRepository) GetAnyByID(ctx context.Context, id int64) (*automation.Instance, error) {
	query := `SELECT ` + automationColumns + ` FROM automation_instances WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	inst, err := scanAutomation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Automation instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get automation instance", err)
	}
	return inst, nil
}

// Update updates an instance
func (r *AutomationRepository) Update(ctx context.Context, inst *automation.Instance) error {
	inst.UpdatedAt = time.Now()

	query := `
		UPDATE automation_instances
		SET name = $1, status = $2, url = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		inst.Name, inst.Status, inst.URL, inst.UpdatedAt.Unix(), inst.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update automation instance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Automation instance")
	}
	return nil
}

// Delete deletes an instance owned by the user
func (r *AutomationRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM automation_instances WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete automation instance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Automation instance")
	}
	return nil
}

// List retrieves the user's instances with pagination
func (r *AutomationRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*automation.Instance, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM automation_instances WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count automation instances", err)
	}

	query := `SELECT ` + automationColumns + ` FROM automation_instances WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list automation instances", err)
	}
	defer rows.Close()

	var instances []*automation.Instance
	for rows.Next() {
		inst, err := scanAutomation(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan automation instance", err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate automation instances", err)
	}

	return instances, total, nil
}
