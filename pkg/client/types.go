package client

import "time"

// Pagination carries the listing metadata shared by all paginated responses
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// ListOptions are the common listing parameters
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

// User is an account as returned by the API
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

// AuthResponse is returned by login and OTP verification
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// VPSInstance is a customer VPS
type VPSInstance struct {
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

	// RootPassword is present only on the deploy response when the platform
	// generated it. Store it; it is never returned again.
	RootPassword string `json:"root_password,omitempty"`
}

// HostingSite is a managed hosting account
type HostingSite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	DomainName string    `json:"domain_name"`
	PlanID     string    `json:"plan_id"`
	LocationID string    `json:"location_id"`
	Subdomains []string  `json:"subdomains"`
	Status     string    `json:"status"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// AdminPassword is present only on the deploy response when the
	// platform generated it.
	AdminPassword string `json:"admin_password,omitempty"`
}

// DatabaseInstance is a managed database
type DatabaseInstance struct {
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

	// Password is present only on the deploy response when the platform
	// generated it.
	Password string `json:"password,omitempty"`
}

// AutomationInstance is a managed n8n instance
type AutomationInstance struct {
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

	// AdminPassword is present only on the deploy response when the
	// platform generated it.
	AdminPassword string `json:"admin_password,omitempty"`
}

// Order is a deploy order for one service instance
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

// Post is a blog article
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Bookmark is a user-saved link
type Bookmark struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Class is a hosting course listing
type Class struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	PriceIDR    int64     `json:"price_idr"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DomainCheckResult is the availability and price of one candidate domain
type DomainCheckResult struct {
	Domain         string `json:"domain"`
	TLD            string `json:"tld"`
	Available      bool   `json:"available"`
	YearlyPriceIDR int64  `json:"yearly_price_idr,omitempty"`
}
