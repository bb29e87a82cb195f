package routes

import (
	"github.com/northbooks/tally/internal/handler/api"
	"github.com/northbooks/tally/internal/router"
)

// APIDeps contains dependencies for API routes
type APIDeps struct {
	// Tax engine (stateless, no tenant required)
	TaxHandler      *api.TaxHandler
	CategoryHandler *api.CategoryHandler

	// Tenant-scoped resources
	TransactionHandler *api.TransactionHandler
	ReportHandler      *api.ReportHandler

	// TenantMiddleware resolves X-Tenant-ID for the tenant-scoped group
	TenantMiddleware router.Middleware
}
