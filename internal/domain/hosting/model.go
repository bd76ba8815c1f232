package hosting

import (
	"time"

	"github.com/belajarhosting/platform/internal/catalog"
)

// Site statuses
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Site is a managed hosting account
type Site struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	DomainName string    `json:"domain_name"`
	PlanID     string    `json:"plan_id"`
	LocationID string    `json:"location_id"`
	Subdomains []string  `json:"subdomains"`
	Status     string    `json:"status"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// AdminPassword is set only on the deploy response when the platform
	// generated one. Never persisted, never returned again.
	AdminPassword string `json:"admin_password,omitempty"`
}

// DeployInput is a hosting order draft. AdminPassword may be empty; a random
// one is generated. Subdomains beyond the plan limit are truncated, matching
// the order form's behavior when switching to a smaller plan.
type DeployInput struct {
	DomainName    string
	PlanID        string
	LocationID    string
	Subdomains    []string
	AdminEmail    string
	AdminPassword string
	BillingCycle  catalog.BillingCycle
}
