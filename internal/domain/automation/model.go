package automation

import (
	"time"

	"github.com/belajarhosting/platform/internal/catalog"
)

// Instance statuses
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Instance is a managed n8n automation instance
type Instance struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Subdomain  string    `json:"subdomain"`
	PlanID     string    `json:"plan_id"`
	LocationID string    `json:"location_id"`
	Status     string    `json:"status"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// AdminPassword is set only on the deploy response when the platform
	// generated one. Never persisted, never returned again.
	AdminPassword string `json:"admin_password,omitempty"`
}

// DeployInput is an automation order draft. AdminPassword may be empty; a
// random one is generated.
type DeployInput struct {
	Name          string
	Subdomain     string
	PlanID        string
	LocationID    string
	AdminEmail    string
	AdminPassword string
	BillingCycle  catalog.BillingCycle
}
