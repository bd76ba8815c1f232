package catalog

import "testing"

func TestPriceQuote_Monthly(t *testing.T) {
	q, err := PriceQuote(95000, BillingMonthly)
	if err != nil {
		t.Fatalf("PriceQuote() error = %v", err)
	}
	if q.TotalIDR != 95000 {
		t.Errorf("TotalIDR = %d, want 95000", q.TotalIDR)
	}
	if q.ReferenceIDR != 0 {
		t.Errorf("ReferenceIDR = %d, want 0 for monthly", q.ReferenceIDR)
	}
}

func TestPriceQuote_YearlyDiscount(t *testing.T) {
	// Yearly totals are exactly 10x the monthly price with a 12x reference,
	// for every plan in every catalog.
	var monthlies []int64
	for _, p := range VPSPlans {
		monthlies = append(monthlies, p.MonthlyPriceIDR)
	}
	for _, p := range HostingPlans {
		monthlies = append(monthlies, p.MonthlyPriceIDR)
	}
	for _, p := range DatabasePlans {
		monthlies = append(monthlies, p.MonthlyPriceIDR)
	}
	for _, p := range AutomationPlans {
		monthlies = append(monthlies, p.MonthlyPriceIDR)
	}

	for _, price := range monthlies {
		q, err := PriceQuote(price, BillingYearly)
		if err != nil {
			t.Fatalf("PriceQuote(%d) error = %v", price, err)
		}
		if q.TotalIDR != 10*price {
			t.Errorf("TotalIDR = %d, want %d", q.TotalIDR, 10*price)
		}
		if q.ReferenceIDR != 12*price {
			t.Errorf("ReferenceIDR = %d, want %d", q.ReferenceIDR, 12*price)
		}
	}
}

func TestPriceQuote_UnknownCycle(t *testing.T) {
	if _, err := PriceQuote(50000, BillingCycle("weekly")); err == nil {
		t.Error("PriceQuote() with unknown cycle should fail")
	}
}

func TestPriceQuote_NegativePrice(t *testing.T) {
	if _, err := PriceQuote(-1, BillingMonthly); err == nil {
		t.Error("PriceQuote() with negative price should fail")
	}
}
