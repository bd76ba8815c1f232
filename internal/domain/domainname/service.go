package domainname

import "context"

// Service defines the interface for domain availability checks
type Service interface {
	// Check checks one fully qualified domain, e.g. "belajar.id"
	Check(ctx context.Context, domain string) (*CheckResult, error)

	// CheckAll checks a bare name against every supported TLD
	CheckAll(ctx context.Context, name string) ([]*CheckResult, error)
}
