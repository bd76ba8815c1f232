package domainname

import "context"

// Repository answers whether a domain is already registered. The registrar
// itself is external; this is the local shadow of taken names.
type Repository interface {
	IsRegistered(ctx context.Context, domain string) (bool, error)
}
