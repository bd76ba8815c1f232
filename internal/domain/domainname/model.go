package domainname

// CheckResult is the availability and price of one candidate domain
type CheckResult struct {
	Domain         string `json:"domain"`
	TLD            string `json:"tld"`
	Available      bool   `json:"available"`
	YearlyPriceIDR int64  `json:"yearly_price_idr,omitempty"`
}
