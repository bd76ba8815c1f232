package catalog

import "fmt"

// DefaultEngineVersion returns the first listed version for an engine
func DefaultEngineVersion(engineID string) (string, bool) {
	e, ok := DatabaseEngineByID(engineID)
	if !ok || len(e.Versions) == 0 {
		return "", false
	}
	return e.Versions[0], true
}

// ResolveEngineVersion validates a version selection against an engine.
// A version carried over from a previously selected engine resets to the new
// engine's default instead of failing.
func ResolveEngineVersion(engineID, version string) (string, error) {
	e, ok := DatabaseEngineByID(engineID)
	if !ok {
		return "", fmt.Errorf("unknown database engine: %q", engineID)
	}
	for _, v := range e.Versions {
		if v == version {
			return version, nil
		}
	}
	if len(e.Versions) == 0 {
		return "", fmt.Errorf("engine %q has no versions", engineID)
	}
	return e.Versions[0], nil
}

// FitSubdomains truncates a subdomain list to the plan's slot limit,
// preserving order. Used when a draft switches to a smaller plan.
func FitSubdomains(planID string, subdomains []string) ([]string, error) {
	p, ok := HostingPlanByID(planID)
	if !ok {
		return nil, fmt.Errorf("unknown hosting plan: %q", planID)
	}
	if len(subdomains) <= p.SubdomainLimit {
		return subdomains, nil
	}
	return subdomains[:p.SubdomainLimit], nil
}
