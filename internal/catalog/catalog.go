// Package catalog holds the fixed plan, engine and location tables offered
// to customers, together with the pricing rules applied to them. The data is
// deliberately hard-coded: the sales catalog changes by deployment, not by
// request.
package catalog

// Location is an available deployment region
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Image is an installable OS image for VPS instances
type Image struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VPSPlan describes a VPS resource plan
type VPSPlan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CPU             int    `json:"cpu"`
	MemoryGB        int    `json:"memory_gb"`
	StorageGB       int    `json:"storage_gb"`
	MonthlyPriceIDR int64  `json:"monthly_price_idr"`
}

// HostingPlan describes a managed hosting plan
type HostingPlan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StorageGB       int    `json:"storage_gb"`
	SubdomainLimit  int    `json:"subdomain_limit"`
	MonthlyPriceIDR int64  `json:"monthly_price_idr"`
}

// DatabaseEngine describes a managed database engine. Versions are ordered
// newest first; the first entry is the default selection.
type DatabaseEngine struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// DatabasePlan describes a managed database resource plan
type DatabasePlan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CPU             int    `json:"cpu"`
	MemoryGB        int    `json:"memory_gb"`
	StorageGB       int    `json:"storage_gb"`
	MonthlyPriceIDR int64  `json:"monthly_price_idr"`
}

// AutomationPlan describes an n8n automation instance plan
type AutomationPlan struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ActiveWorkflows  int    `json:"active_workflows"`
	ExecutionsPerDay int    `json:"executions_per_day"`
	MonthlyPriceIDR  int64  `json:"monthly_price_idr"`
}

// TLDPrice is the yearly registration price for a supported TLD
type TLDPrice struct {
	TLD            string `json:"tld"`
	YearlyPriceIDR int64  `json:"yearly_price_idr"`
}

var Locations = []Location{
	{ID: "idn-jkt", Name: "Jakarta 1", City: "Jakarta", Country: "ID"},
	{ID: "idn-sby", Name: "Surabaya 1", City: "Surabaya", Country: "ID"},
	{ID: "sgp-01", Name: "Singapore 1", City: "Singapore", Country: "SG"},
}

var Images = []Image{
	{ID: "ubuntu-24.04", Name: "Ubuntu 24.04 LTS"},
	{ID: "ubuntu-22.04", Name: "Ubuntu 22.04 LTS"},
	{ID: "debian-12", Name: "Debian 12"},
	{ID: "almalinux-9", Name: "AlmaLinux 9"},
	{ID: "rocky-9", Name: "Rocky Linux 9"},
}

var VPSPlans = []VPSPlan{
	{ID: "vps-basic", Name: "VPS Basic", CPU: 1, MemoryGB: 1, StorageGB: 20, MonthlyPriceIDR: 50000},
	{ID: "vps-standard", Name: "VPS Standard", CPU: 2, MemoryGB: 2, StorageGB: 40, MonthlyPriceIDR: 95000},
	{ID: "vps-pro", Name: "VPS Pro", CPU: 4, MemoryGB: 8, StorageGB: 80, MonthlyPriceIDR: 185000},
	{ID: "vps-ultra", Name: "VPS Ultra", CPU: 8, MemoryGB: 16, StorageGB: 160, MonthlyPriceIDR: 360000},
}

var HostingPlans = []HostingPlan{
	{ID: "starter", Name: "Hosting Starter", StorageGB: 5, SubdomainLimit: 1, MonthlyPriceIDR: 25000},
	{ID: "personal", Name: "Hosting Personal", StorageGB: 20, SubdomainLimit: 3, MonthlyPriceIDR: 45000},
	{ID: "business", Name: "Hosting Business", StorageGB: 50, SubdomainLimit: 5, MonthlyPriceIDR: 90000},
	{ID: "enterprise", Name: "Hosting Enterprise", StorageGB: 100, SubdomainLimit: 10, MonthlyPriceIDR: 175000},
}

var DatabaseEngines = []DatabaseEngine{
	{ID: "mysql", Name: "MySQL", Versions: []string{"8.0", "5.7"}},
	{ID: "postgresql", Name: "PostgreSQL", Versions: []string{"15", "14", "13"}},
	{ID: "mariadb", Name: "MariaDB", Versions: []string{"10.11", "10.6"}},
	{ID: "redis", Name: "Redis", Versions: []string{"7.2", "7.0"}},
	{ID: "mongodb", Name: "MongoDB", Versions: []string{"7.0", "6.0"}},
}

var DatabasePlans = []DatabasePlan{
	{ID: "db-micro", Name: "DB Micro", CPU: 1, MemoryGB: 1, StorageGB: 10, MonthlyPriceIDR: 60000},
	{ID: "db-small", Name: "DB Small", CPU: 2, MemoryGB: 4, StorageGB: 40, MonthlyPriceIDR: 145000},
	{ID: "db-medium", Name: "DB Medium", CPU: 4, MemoryGB: 8, StorageGB: 100, MonthlyPriceIDR: 280000},
}

var AutomationPlans = []AutomationPlan{
	{ID: "n8n-starter", Name: "n8n Starter", ActiveWorkflows: 5, ExecutionsPerDay: 500, MonthlyPriceIDR: 40000},
	{ID: "n8n-pro", Name: "n8n Pro", ActiveWorkflows: 25, ExecutionsPerDay: 5000, MonthlyPriceIDR: 110000},
	{ID: "n8n-business", Name: "n8n Business", ActiveWorkflows: 100, ExecutionsPerDay: 50000, MonthlyPriceIDR: 250000},
}

var TLDPrices = []TLDPrice{
	{TLD: "com", YearlyPriceIDR: 175000},
	{TLD: "net", YearlyPriceIDR: 195000},
	{TLD: "org", YearlyPriceIDR: 185000},
	{TLD: "id", YearlyPriceIDR: 250000},
	{TLD: "co.id", YearlyPriceIDR: 325000},
	{TLD: "my.id", YearlyPriceIDR: 20000},
	{TLD: "web.id", YearlyPriceIDR: 65000},
	{TLD: "dev", YearlyPriceIDR: 240000},
}

// LocationByID looks up a location by id
func LocationByID(id string) (Location, bool) {
	for _, l := range Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// ImageByID looks up an OS image by id
func ImageByID(id string) (Image, bool) {
	for _, img := range Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// VPSPlanByID looks up a VPS plan by id
func VPSPlanByID(id string) (VPSPlan, bool) {
	for _, p := range VPSPlans {
		if p.ID == id {
			return p, true
		}
	}
	return VPSPlan{}, false
}

// HostingPlanByID looks up a hosting plan by id
func HostingPlanByID(id string) (HostingPlan, bool) {
	for _, p := range HostingPlans {
		if p.ID == id {
			return p, true
		}
	}
	return HostingPlan{}, false
}

// DatabaseEngineByID looks up a database engine by id
func DatabaseEngineByID(id string) (DatabaseEngine, bool) {
	for _, e := range DatabaseEngines {
		if e.ID == id {
			return e, true
		}
	}
	return DatabaseEngine{}, false
}

// DatabasePlanByID looks up a database plan by id
func DatabasePlanByID(id string) (DatabasePlan, bool) {
	for _, p := range DatabasePlans {
		if p.ID == id {
			return p, true
		}
	}
	return DatabasePlan{}, false
}

// AutomationPlanByID looks up an automation plan by id
func AutomationPlanByID(id string) (AutomationPlan, bool) {
	for _, p := range AutomationPlans {
		if p.ID == id {
			return p, true
		}
	}
	return AutomationPlan{}, false
}

// TLDPriceFor looks up the registration price for a TLD
func TLDPriceFor(tld string) (TLDPrice, bool) {
	for _, p := range TLDPrices {
		if p.TLD == tld {
			return p, true
		}
	}
	return TLDPrice{}, false
}
