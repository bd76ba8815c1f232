package credit

import "time"

// Transaction types
const (
	TypeTopup  = "topup"
	TypeDeduct = "deduct"
)

// Transaction statuses. Top-ups start pending until an admin settles them;
// the payment gateway itself is an external collaborator.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
	StatusRejected  = "rejected"
)

// Transaction is a credit ledger entry
type Transaction struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	AmountIDR int64     `json:"amount_idr"`
	Method    string    `json:"method,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows transaction listings
type Filter struct {
	UserID int64
	Type   string
	Status string
}
