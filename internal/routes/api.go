package routes

import (
	"github.com/northbooks/tally/internal/router"
)

// RegisterAPIRoutes registers the JSON API.
//
// Tax calculation and category lookup are stateless and open. Transactions
// and reports read tenant data, so they sit behind the tenant resolver.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	// Tax engine
	r.Post("/api/tax/calculate", deps.TaxHandler.Calculate)
	r.Post("/api/tax/extract", deps.TaxHandler.Extract)
	r.Get("/api/tax/rates", deps.TaxHandler.Rates)

	// CRA expense categories
	r.Get("/api/categories", deps.CategoryHandler.List)
	r.Get("/api/categories/match", deps.CategoryHandler.Match)

	// Tenant-scoped resources
	tenanted := r.Group(deps.TenantMiddleware)
	tenanted.Post("/api/transactions", deps.TransactionHandler.Create)
	tenanted.Get("/api/transactions", deps.TransactionHandler.List)
	tenanted.Get("/api/transactions/{id}", deps.TransactionHandler.Get)
	tenanted.Delete("/api/transactions/{id}", deps.TransactionHandler.Delete)

	tenanted.Get("/api/reports/summary", deps.ReportHandler.Summary)
	tenanted.Get("/api/reports/export", deps.ReportHandler.Export)
}
