package postgres

import (
	"context"
	"database/sql"

	"github.com/belajarhosting/platform/internal/domain/domainname"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// DomainRepository implements domainname.Repository against the local shadow
// table of registered names
type DomainRepository struct {
	db *sql.DB
}

// NewDomainRepository creates a new domain repository
func NewDomainRepository(db *sql.DB) domainname.Repository {
	return &DomainRepository{db: db}
}

// IsRegistered reports whether the domain is already taken
func (r *DomainRepository) IsRegistered(ctx context.Context, domain string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registered_domains WHERE domain = $1", domain,
	).Scan(&count)
	if err != nil {
		return false, errors.DatabaseError("Failed to check domain", err)
	}
	return count > 0, nil
}
