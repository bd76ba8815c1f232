package dto

// FulfillRequest carries the admin-entered provisioning result for an order
type FulfillRequest struct {
	// IPAddress is required when fulfilling VPS orders
	IPAddress string `json:"ip_address"`
	Host      string `json:"host"`
	Port      int    `json:"port" validate:"omitempty,gt=0"`
	URL       string `json:"url" validate:"omitempty,url"`
}

// OrderStatusRequest moves an order between statuses
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active cancelled expired"`
}

// UserRoleRequest changes a user's role
type UserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// UserVerifyRequest overrides a user's verification flag
type UserVerifyRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// DashboardSummary is the admin landing page counters
type DashboardSummary struct {
	TotalUsers          int64 `json:"total_users"`
	PendingOrders       int64 `json:"pending_orders"`
	ActiveOrders        int64 `json:"active_orders"`
	PendingTransactions int64 `json:"pending_transactions"`
}
