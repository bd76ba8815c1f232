package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// HostingRepository implements hosting.Repository. Subdomains are stored as a
// JSON array in a TEXT column.
type HostingRepository struct {
	db *sql.DB
}

// NewHostingRepository creates a new hosting repository
func NewHostingRepository(db *sql.DB) hosting.Repository {
	return &HostingRepository{db: db}
}

const hostingColumns = "id, user_id, domain_name, plan_id, location_id, subdomains, status, url, created_at, updated_at"

func scanSite(scan func(dest ...interface{}) error) (*hosting.Site, error) {
	var site hosting.Site
	var subdomains, url sql.NullString
	var createdAt, updatedAt int64

	err := scan(
		&site.ID, &site.UserID, &site.DomainName, &site.PlanID, &site.LocationID,
		&subdomains, &site.Status, &url, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if subdomains.Valid && subdomains.String != "" {
		if err := json.Unmarshal([]byte(subdomains.String), &site.Subdomains); err != nil {
			return nil, err
		}
	}
	if url.Valid {
		site.URL = url.String
	}
	site.CreatedAt = time.Unix(createdAt, 0)
	site.UpdatedAt = time.Unix(updatedAt, 0)
	return &site, nil
}

func marshalSubdomains(subdomains []string) (string, error) {
	if subdomains == nil {
		subdomains = []string{}
	}
	data, err := json.Marshal(subdomains)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Create creates a new hosting site
func (r *HostingRepository) Create(ctx context.Context, site *hosting.Site) error {
	now := time.Now()
	site.CreatedAt = now
	site.UpdatedAt = now

	subdomains, err := marshalSubdomains(site.Subdomains)
	if err != nil {
		return errors.Internal("Failed to encode subdomains", err)
	}

	query := `
		INSERT INTO hosting_sites (user_id, domain_name, plan_id, location_id, subdomains, status, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err = r.db.QueryRowContext(ctx, query,
		site.UserID, site.DomainName, site.PlanID, site.LocationID,
		subdomains, site.Status, site.URL, now.Unix(), now.Unix(),
	).Scan(&site.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create hosting site", err)
	}
	return nil
}

// GetByID retrieves a site scoped to its owner
func (r *HostingRepository) GetByID(ctx context.Context, userID, id int64) (*hosting.Site, error) {
	query := `SELECT ` + hostingColumns + ` FROM hosting_sites WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRowContext(ctx, query, id, userID)
	site, err := scanSite(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Hosting site")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get hosting site", err)
	}
	return site, nil
}

// GetAnyByID fetches without an owner check, for admin fulfillment
func (r *HostingRepository) GetAnyByID(ctx context.Context, id int64) (*hosting.Site, error) {
	query := `SELECT ` + hostingColumns + ` FROM hosting_sites WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	site, err := scanSite(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Hosting site")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get hosting site", err)
	}
	return site, nil
}

// Update updates a site
func (r *HostingRepository) Update(ctx context.Context, site *hosting.Site) error {
	site.UpdatedAt = time.Now()

	subdomains, err := marshalSubdomains(site.Subdomains)
	if err != nil {
		return errors.Internal("Failed to encode subdomains", err)
	}

	query := `
		UPDATE hosting_sites
		SET domain_name = $1, subdomains = $2, status = $3, url = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		site.DomainName, subdomains, site.Status, site.URL, site.UpdatedAt.Unix(), site.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update hosting site", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Hosting site")
	}
	return nil
}

// Delete deletes a site owned by the user
func (r *HostingRepository) Delete(ctx context.Context, userID, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hosting_sites WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.DatabaseError("Failed to delete hosting site", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Hosting site")
	}
	return nil
}

// List retrieves the user's sites with pagination
func (r *HostingRepository) List(ctx context.Context, userID int64, limit, offset int) ([]*hosting.Site, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM hosting_sites WHERE user_id = $1", userID).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count hosting sites", err)
	}

	query := `SELECT ` + hostingColumns + ` FROM hosting_sites WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list hosting sites", err)
	}
	defer rows.Close()

	var sites []*hosting.Site
	for rows.Next() {
		site, err := scanSite(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan hosting site", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate hosting sites", err)
	}

	return sites, total, nil
}
