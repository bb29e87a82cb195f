// Package bootstrap handles one-time initialization tasks for the application.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureDefaultTenant creates the configured tenant row if it doesn't
// exist. Idempotent - safe to call on every startup. In single-workspace
// deployments this is the only tenant the server ever sees.
func EnsureDefaultTenant(ctx context.Context, db *pgxpool.Pool, tenantID, name string, logger *slog.Logger) error {
	var id pgtype.UUID
	if err := id.Scan(tenantID); err != nil {
		return fmt.Errorf("invalid tenant ID %q: %w", tenantID, err)
	}

	const q = `
		INSERT INTO tenants (id, slug, name, status)
		VALUES ($1, $2, $3, 'active')
		ON CONFLICT (id) DO NOTHING`

	tag, err := db.Exec(ctx, q, id, "default", name)
	if err != nil {
		return fmt.Errorf("failed to ensure default tenant: %w", err)
	}

	if tag.RowsAffected() > 0 {
		logger.Info("bootstrap: created default tenant", "tenant_id", tenantID, "name", name)
	}
	return nil
}
