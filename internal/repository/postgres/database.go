package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/belajarhosting/platform/internal/domain/database"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// DatabaseRepository implements database.Repository
type DatabaseRepository struct {
	db *sql.DB
}

// NewDatabaseRepository creates a new managed database repository
func NewDatabaseRepository(db *sql.DB) database.Repository {
	return &DatabaseRepository{db: db}
}

const databaseColumns = "id, user_id, name, engine_id, version, plan_id, location_id, database_name, database_user, status, host, port, created_at, updated_at"

func scanDatabase(scan func(dest ...interface{}) error) (*database.Instance, error) {
	var inst database.Instance
	var host sql.NullString
	var port sql.NullInt64
	var createdAt, updatedAt int64

	err := scan(
		&inst.ID, &inst.UserID, &inst.Name, &inst.EngineID, &inst.Version,
		&inst.PlanID, &inst.LocationID, &inst.DatabaseName, &inst.DatabaseUser,
		&inst.Status, &host, &port, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if host.Valid {
		inst.Host = host.String
	}
	if port.Valid {
		inst.Port = int(port.Int64)
	}
	inst.CreatedAt = time.Unix(createdAt, 0)
	inst.UpdatedAt = time.Unix(updatedAt, 0)
	return &inst, nil
}

// Create creates a new managed database instance
func (r *DatabaseRepository) Create(ctx context.Context, inst *database.Instance) error {
	now := time.Now()
	inst.CreatedAt = now
	inst.UpdatedAt = now

	query := `
		INSERT INTO database_instances (user_id, name, engine_id, version, plan_id, location_id, database_name, database_user, status, host, port, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		inst.UserID, inst.Name, inst.EngineID, inst.Version, inst.PlanID, inst.LocationID,
		inst.DatabaseName, inst.DatabaseUser, inst.Status, inst.Host, inst.Port, now.Unix(), now.Unix(),
	).Scan(&inst.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create database instance", err)
	}
	return nil
}

// GetByID retrieves an instance scoped to its owner
func (r *DatabaseRepository) GetByID(ctx context.Context, userID, id int64) (*database.Instance, error) {
	query := `SELECT ` + databaseColumns + ` FROM database_instances WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	inst, err := scanDatabase(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Database instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get database instance", err)
	}
	return inst, nil
}

// GetAnyByID fetches without an owner check, for admin fulfillment
func (r *DatabaseRepository) GetAnyByID(ctx context.Context, id int64) (*database.Instance, error) {
	query := `SELECT ` + databaseColumns + ` FROM database_instances WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	inst, err := scanDatabase(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Database instance")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get database instance", err)
	}
	return inst, nil
}

// Update updates an instance
func (r *DatabaseRepository) Update(ctx context.Context, inst *database.Instance) error {
	inst.UpdatedAt = time.Now()

	query := `
		UPDATE database_instances
		SET name = $1, status = $2, host = $3, port = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		inst.Name, inst.Status, inst.Host, inst.Port, inst.UpdatedAt.Unix(), inst.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update database instance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Database instance")
	}
	return nil
}

// Delete deletes an instance owned by the user
func (r *DatabaseRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM database_instances WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete database instance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Database instance")
	}
	return nil
}

// List retrieves the user's instances with pagination
func (r *DatabaseRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*database.Instance, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM database_instances WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count database instances", err)
	}

	query := `SELECT ` + databaseColumns + ` FROM database_instances WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list database instances", err)
	}
	defer rows.Close()

	var instances []*database.Instance
	for rows.Next() {
		inst, err := scanDatabase(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan database instance", err)
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate database instances", err)
	}

	return instances, total, nil
}
