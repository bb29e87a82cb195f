package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when no tenant exists for the given ID.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrNoTenant is returned when tenant context is required but not present.
	ErrNoTenant = errors.New("no tenant in context")
)
