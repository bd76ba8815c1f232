package database

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

// Instance is a managed database
type Instance struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	EngineID     string    `json:"engine_id"`
	Version      string    `json:"version"`
	PlanID       string    `json:"plan_id"`
	LocationID   string    `json:"location_id"`
	DatabaseName string    `json:"database_name"`
	DatabaseUser string    `json:"database_user"`
	Status       string    `json:"status"`
	Host         string    `json:"host,omitempty"`
	Port         int       `json:"port,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Password is set only on the deploy response when the platform
	// generated one. Never persisted, never returned again.
	Password string `json:"password,omitempty"`
}

// DeployInput is a managed database order draft. A version left over from a
// previously selected engine resets to the engine's default. Password may be
// empty; a random one is generated.
type DeployInput struct {
	Name         string
	EngineID     string
	Version      string
	PlanID       string
	LocationID   string
	DatabaseName string
	DatabaseUser string
	Password     string
	BillingCycle catalog.BillingCycle
}
