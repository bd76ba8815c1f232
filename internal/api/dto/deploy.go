package dto

// VPSDeployRequest is a VPS order form submission
type VPSDeployRequest struct {
	Hostname     string `json:"hostname" validate:"required,hostname_rfc1123"`
	PlanID       string `json:"plan_id" validate:"required"`
	LocationID   string `json:"location_id" validate:"required"`
	ImageID      string `json:"image_id" validate:"required"`
	RootPassword string `json:"root_password" validate:"omitempty,min=8"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

// VPSReinstallRequest wipes an instance with a fresh image
type VPSReinstallRequest struct {
	ImageID      string `json:"image_id" validate:"required"`
	RootPassword string `json:"root_password" validate:"omitempty,min=8"`
}

// HostingDeployRequest is a managed hosting order form submission
type HostingDeployRequest struct {
	DomainName    string   `json:"domain_name" validate:"required"`
	PlanID        string   `json:"plan_id" validate:"required"`
	LocationID    string   `json:"location_id" validate:"required"`
	Subdomains    []string `json:"subdomains"`
	AdminEmail    string   `json:"admin_email" validate:"required,email"`
	AdminPassword string   `json:"admin_password" validate:"omitempty,min=8"`
	BillingCycle  string   `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

// SubdomainsRequest replaces a hosting site's subdomain list
type SubdomainsRequest struct {
	Subdomains []string `json:"subdomains" validate:"required"`
}

// DatabaseDeployRequest is a managed database order form submission
type DatabaseDeployRequest struct {
	Name         string `json:"name" validate:"required"`
	EngineID     string `json:"engine_id" validate:"required"`
	Version      string `json:"version"`
	PlanID       string `json:"plan_id" validate:"required"`
	LocationID   string `json:"location_id" validate:"required"`
	DatabaseName string `json:"database_name" validate:"required,alphanum"`
	DatabaseUser string `json:"database_user" validate:"required,alphanum"`
	Password     string `json:"password" validate:"omitempty,min=8"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

// AutomationDeployRequest is an n8n instance order form submission
type AutomationDeployRequest struct {
	Name          string `json:"name" validate:"required"`
	Subdomain     string `json:"subdomain" validate:"required,hostname_rfc1123"`
	PlanID        string `json:"plan_id" validate:"required"`
	LocationID    string `json:"location_id" validate:"required"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"omitempty,min=8"`
	BillingCycle  string `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

// DeployResponse pairs the created instance with its pending order
type DeployResponse struct {
	Instance interface{} `json:"instance"`
	Order    interface{} `json:"order"`
}
