package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/northbooks/tally/internal/tenant"
)

// TenantIDHeader carries the workspace identity on every /api request.
const TenantIDHeader = "X-Tenant-ID"

// TenantConfig holds configuration for tenant resolution middleware.
type TenantConfig struct {
	// Resolver is the tenant resolver for database lookups.
	Resolver tenant.Resolver

	// Logger is the structured logger for middleware operations.
	// If nil, uses slog.Default().
	Logger *slog.Logger
}

// ResolveTenant creates middleware that resolves the tenant from the
// X-Tenant-ID header and attaches it to the request context.
//
// A missing or malformed header is a 400. After resolution, tenant
// status is checked:
//   - "active": continue normally, tenant added to context
//   - "suspended": respond with 403
//   - anything else (cancelled, unknown): respond with 404
func ResolveTenant(cfg TenantConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(TenantIDHeader)
			if header == "" {
				respondError(w, http.StatusBadRequest, "invalid", "Missing "+TenantIDHeader+" header")
				return
			}

			var id pgtype.UUID
			if err := id.Scan(header); err != nil {
				respondError(w, http.StatusBadRequest, "invalid", "Malformed tenant ID")
				return
			}

			t, err := cfg.Resolver.ByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, tenant.ErrTenantNotFound) {
					respondError(w, http.StatusNotFound, "not_found", "Tenant not found")
					return
				}
				logger.Error("tenant resolution failed", "error", err, "tenant_id", header)
				respondError(w, http.StatusInternalServerError, "internal", "An internal error occurred. Please try again later.")
				return
			}

			switch t.Status {
			case "active":
				// fall through
			case "suspended":
				respondError(w, http.StatusForbidden, "forbidden", "Tenant is suspended")
				return
			default:
				respondError(w, http.StatusNotFound, "not_found", "Tenant not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(tenant.NewContext(r.Context(), t)))
		})
	}
}
