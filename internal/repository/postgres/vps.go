package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// VPSRepository implements vps.Repository
type VPSRepository struct {
	db *sql.DB
}

// NewVPSRepository creates a new VPS repository
func NewVPSRepository(db *sql.DB) vps.Repository {
	return &VPSRepository{db: db}
}

const vpsColumns = "id, user_id, hostname, plan_id, location_id, image_id, status, ip_address, created_at, updated_at"

func scanVPS(scan func(dest ...interface{}) error) (*vps.Instance, error) {
	var inst vps.Instance
	var ip sql.NullString
	var createdAt, updatedAt int64

	err := scan(
		&inst.ID, &inst.UserID, &inst.Hostname, &inst.PlanID, &inst.LocationID,
		&inst.ImageID, &inst.Status, &ip, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if ip.Valid {
		inst.IPAddress = ip.String
	}
	inst.CreatedAt = time.Unix(createdAt, 0)
	inst.UpdatedAt = time.Unix(updatedAt, 0)
	return &inst, nil
}

// Create creates a new VPS instance
func (r *VPSRepository) Create(ctx context.Context, inst *vps.Instance) error {
	now := time.Now()
	inst.CreatedAt = now
	inst.UpdatedAt = now

	query := `
		INSERT INTO vps_instances (user_id, hostname, plan_id, location_id, image_id, status, ip_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		inst.UserID, inst.Hostname, inst.PlanID, inst.LocationID, inst.ImageID,
		inst.Status, inst.IPAddress, now.Unix(), now.Unix(),
	).Scan(&inst.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create VPS instance", err)
	}
	return nil
}

// GetByID retrieves an instance scoped to its owner
func (r *VPSRepository) GetByID(ctx context.Context, userID, id int64) (*vps.Instance, error) {
	query := `SELECT ` + vpsColumns + ` FROM vps_instances WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	inst, err := scanVPS(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("VPS instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get VPS instance", err)
	}
	return inst, nil
}

// GetAnyByID fetches without an owner check, for admin fulfillment
func (r *VPSRepository) GetAnyByID(ctx context.Context, id int64) (*vps.Instance, error) {
	query := `SELECT ` + vpsColumns + ` FROM vps_instances WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	inst, err := scanVPS(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("VPS instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get VPS instance", err)
	}
	return inst, nil
}

// Update updates an instance
func (r *VPSRepository) Update(ctx context.Context, inst *vps.Instance) error {
	inst.UpdatedAt = time.Now()

	query := `
		UPDATE vps_instances
		SET hostname = $1, image_id = $2, status = $3, ip_address = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		inst.Hostname, inst.ImageID, inst.Status, inst.IPAddress, inst.UpdatedAt.Unix(), inst.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update VPS instance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("VPS instance")
	}
	return nil
}

// Delete deletes an instance owned by the user
func (r *VPSRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vps_instances WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete VPS instance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("VPS instance")
	}
	return nil
}

// List retrieves the user's instances with pagination
func (r *VPSRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*vps.Instance, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vps_instances WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count VPS instances", err)
	}

	query := `SELECT ` + vpsColumns + ` FROM vps_instances WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list VPS instances", err)
	}
	defer rows.Close()

	var instances []*vps.Instance
	for rows.Next() {
		inst, err := scanVPS(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan VPS instance", err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate VPS instances", err)
	}

	return instances, total, nil
}
