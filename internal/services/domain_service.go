package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/domainname"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
)

var domainLabelRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// DomainService implements domainname.Service
type DomainService struct {
	repo   domainname.Repository
	logger *logger.Logger
}

// NewDomainService creates a new domain availability service
func NewDomainService(repo domainname.Repository, log *logger.Logger) domainname.Service {
	return &DomainService{repo: repo, logger: log}
}

// Check checks one fully qualified domain, e.g. "belajar.co.id". The TLD is
// the longest supported suffix, so co.id wins over id.
func (s *DomainService) Check(ctx context.Context, domain string) (*domainname.CheckResult, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	name, tld, ok := splitDomain(domain)
	if !ok {
		return nil, errors.BadRequest("Unsupported or malformed domain")
	}
	if !domainLabelRe.MatchString(name) {
		return nil, errors.BadRequest("Unsupported or malformed domain")
	}

	price, _ := catalog.TLDPriceFor(tld)
	registered, err := s.repo.IsRegistered(ctx, domain)
	if err != nil {
		return nil, errors.DatabaseError("Failed to check domain", err)
	}

	return &domainname.CheckResult{
		Domain:         domain,
		TLD:            tld,
		Available:      !registered,
		YearlyPriceIDR: price.YearlyPriceIDR,
	}, nil
}

// CheckAll checks a bare name against every supported TLD
func (s *DomainService) CheckAll(ctx context.Context, name string) ([]*domainname.CheckResult, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || !domainLabelRe.MatchString(name) {
		return nil, errors.BadRequest("Invalid domain name")
	}

	results := make([]*domainname.CheckResult, 0, len(catalog.TLDPrices))
	for _, price := range catalog.TLDPrices {
		domain := name + "." + price.TLD
		registered, err := s.repo.IsRegistered(ctx, domain)
		if err != nil {
			return nil, errors.DatabaseError("Failed to check domain", err)
		}
		results = append(results, &domainname.CheckResult{
			Domain:         domain,
			TLD:            price.TLD,
			Available:      !registered,
			YearlyPriceIDR: price.YearlyPriceIDR,
		})
	}
	return results, nil
}

// splitDomain separates name and TLD, matching the longest supported TLD
// suffix
func splitDomain(domain string) (name, tld string, ok bool) {
	for _, price := range catalog.TLDPrices {
		suffix := "." + price.TLD
		if strings.HasSuffix(domain, suffix) && len(price.TLD) > len(tld) {
			name = strings.TrimSuffix(domain, suffix)
			tld = price.TLD
			ok = true
		}
	}
	if ok && name == "" {
		return "", "", false
	}
	return name, tld, ok
}
