package dto

// TopUpRequest creates a pending credit top-up
type TopUpRequest struct {
	AmountIDR int64  `json:"amount_idr" validate:"required,gt=0"`
	Method    string `json:"method" validate:"required"`
}

// BalanceResponse reports the user's credit balance
type BalanceResponse struct {
	BalanceIDR int64 `json:"balance_idr"`
}
