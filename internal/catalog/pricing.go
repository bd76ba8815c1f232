package catalog

import "fmt"

// BillingCycle is the customer-selected payment interval
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// Yearly orders pay for 10 months and get 12. ReferenceIDR carries the
// undiscounted 12-month price shown struck through next to the total.
const (
	yearlyPaidMonths      = 10
	yearlyReferenceMonths = 12
)

// Quote is a computed order price
type Quote struct {
	BillingCycle    BillingCycle `json:"billing_cycle"`
	MonthlyPriceIDR int64        `json:"monthly_price_idr"`
	TotalIDR        int64        `json:"total_idr"`
	ReferenceIDR    int64        `json:"reference_idr,omitempty"`
}

// Valid reports whether c is a known billing cycle
func (c BillingCycle) Valid() bool {
	return c == BillingMonthly || c == BillingYearly
}

// PriceQuote computes the charged total for a monthly plan price under the
// given billing cycle. Every deploy flow prices through this one function.
func PriceQuote(monthlyPriceIDR int64, cycle BillingCycle) (Quote, error) {
	if monthlyPriceIDR < 0 {
		return Quote{}, fmt.Errorf("negative monthly price: %d", monthlyPriceIDR)
	}

	switch cycle {
	case BillingMonthly:
		return Quote{
			BillingCycle:    BillingMonthly,
			MonthlyPriceIDR: monthlyPriceIDR,
			TotalIDR:        monthlyPriceIDR,
		}, nil
	case BillingYearly:
		return Quote{
			BillingCycle:    BillingYearly,
			MonthlyPriceIDR: monthlyPriceIDR,
			TotalIDR:        monthlyPriceIDR * yearlyPaidMonths,
			ReferenceIDR:    monthlyPriceIDR * yearlyReferenceMonths,
		}, nil
	default:
		return Quote{}, fmt.Errorf("unknown billing cycle: %q", cycle)
	}
}
