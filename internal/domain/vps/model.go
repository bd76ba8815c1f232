package vps

import (
	"time"

	"github.com/belajarhosting/platform/internal/catalog"
)

// Instance statuses. Pending instances await admin fulfillment; suspended
// ones lapsed their paid period.
const (
	StatusPending    = "pending"
	StatusActive     = "active"
	StatusStopped    = "stopped"
	StatusSuspended  = "suspended"
	StatusTerminated = "terminated"
)

// Instance is a customer VPS
type Instance struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Hostname   string    `json:"hostname"`
	PlanID     string    `json:"plan_id"`
	LocationID string    `json:"location_id"`
	ImageID    string    `json:"image_id"`
	Status     string    `json:"status"`
	IPAddress  string    `json:"ip_address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// RootPassword is set only on the deploy response when the customer let
	// the platform generate one. It is never persisted and never returned
	// again.
	RootPassword string `json:"root_password,omitempty"`
}

// DeployInput is a VPS order draft as submitted by the customer.
// RootPassword may be empty; a random one is generated.
type DeployInput struct {
	Hostname     string
	PlanID       string
	LocationID   string
	ImageID      string
	RootPassword string
	BillingCycle catalog.BillingCycle
}

// ReinstallInput wipes an instance with a fresh image and root password
type ReinstallInput struct {
	ImageID      string
	RootPassword string
}
