package order

import "time"

// ServiceType identifies which product an order provisions
const (
	ServiceVPS        = "VPS"
	ServiceHosting    = "HOSTING"
	ServiceDatabase   = "DATABASE"
	ServiceAutomation = "AUTOMATION"
)

// Order statuses
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// Order is a deploy order for one service instance. Totals are computed
// server-side from the catalog at creation time and never changed after.
type Order struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	ServiceType  string     `json:"service_type"`
	InstanceID   int64      `json:"instance_id"`
	PlanID       string     `json:"plan_id"`
	BillingCycle string     `json:"billing_cycle"`
	TotalIDR     int64      `json:"total_idr"`
	ReferenceIDR int64      `json:"reference_idr,omitempty"`
	Status       string     `json:"status"`
	PaidUntil    *time.Time `json:"paid_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Filter narrows order listings
type Filter struct {
	UserID      int64
	ServiceType string
	Status      string
}

// FulfillInput carries the admin-entered provisioning result
type FulfillInput struct {
	// IPAddress is required for VPS fulfillment
	IPAddress string
	// Host and Port are set for database fulfillment
	Host string
	Port int
	// URL is set for hosting and automation fulfillment
	URL string
}
