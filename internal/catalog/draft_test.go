package catalog

import (
	"reflect"
	"testing"
)

func TestResolveEngineVersion(t *testing.T) {
	tests := []struct {
		name     string
		engineID string
		version  string
		want     string
		wantErr  bool
	}{
		{
			name:     "valid selection kept",
			engineID: "mysql",
			version:  "5.7",
			want:     "5.7",
		},
		{
			// Switching MySQL -> PostgreSQL carries "8.0" over; it must
			// reset to PostgreSQL's first listed version.
			name:     "stale version resets to engine default",
			engineID: "postgresql",
			version:  "8.0",
			want:     "15",
		},
		{
			name:     "empty version resets to default",
			engineID: "mariadb",
			version:  "",
			want:     "10.11",
		},
		{
			name:     "unknown engine",
			engineID: "oracle",
			version:  "21c",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEngineVersion(tt.engineID, tt.version)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveEngineVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ResolveEngineVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultEngineVersion(t *testing.T) {
	v, ok := DefaultEngineVersion("postgresql")
	if !ok || v != "15" {
		t.Errorf("DefaultEngineVersion(postgresql) = %q, %v; want 15, true", v, ok)
	}
	if _, ok := DefaultEngineVersion("nope"); ok {
		t.Error("DefaultEngineVersion(nope) should report not found")
	}
}

func TestFitSubdomains(t *testing.T) {
	four := []string{"blog", "shop", "mail", "dev"}

	tests := []struct {
		name       string
		planID     string
		subdomains []string
		want       []string
		wantErr    bool
	}{
		{
			name:       "within limit unchanged",
			planID:     "business", // limit 5
			subdomains: four,
			want:       four,
		},
		{
			// Switching business -> starter with 4 entered keeps the first 1.
			name:       "truncated to smaller plan",
			planID:     "starter", // limit 1
			subdomains: four,
			want:       []string{"blog"},
		},
		{
			name:       "empty list stays empty",
			planID:     "starter",
			subdomains: nil,
			want:       nil,
		},
		{
			name:       "unknown plan",
			planID:     "mega",
			subdomains: four,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitSubdomains(tt.planID, tt.subdomains)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FitSubdomains() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FitSubdomains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	check := func(kind, id string) {
		key := kind + "/" + id
		if seen[key] {
			t.Errorf("duplicate %s id %q", kind, id)
		}
		seen[key] = true
	}
	for _, p := range VPSPlans {
		check("vps", p.ID)
	}
	for _, p := range HostingPlans {
		check("hosting", p.ID)
	}
	for _, e := range DatabaseEngines {
		check("engine", e.ID)
		if len(e.Versions) == 0 {
			t.Errorf("engine %q has no versions", e.ID)
		}
	}
	for _, p := range DatabasePlans {
		check("dbplan", p.ID)
	}
	for _, p := range AutomationPlans {
		check("automation", p.ID)
	}
	for _, l := range Locations {
		check("location", l.ID)
	}
}
