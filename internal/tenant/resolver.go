package tenant

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Resolver resolves tenants from request identifiers.
type Resolver interface {
	// ByID resolves a tenant by ID.
	ByID(ctx context.Context, id pgtype.UUID) (*Tenant, error)
}

// DBResolver implements Resolver using database queries.
type DBResolver struct {
	db *pgxpool.Pool
}

// NewDBResolver creates a new database-backed tenant resolver.
func NewDBResolver(db *pgxpool.Pool) *DBResolver {
	return &DBResolver{db: db}
}

// ByID resolves a tenant by ID.
func (r *DBResolver) ByID(ctx context.Context, id pgtype.UUID) (*Tenant, error) {
	const q = `SELECT id, slug, name, status FROM tenants WHERE id = $1`

	var t Tenant
	err := r.db.QueryRow(ctx, q, id).Scan(&t.ID, &t.Slug, &t.Name, &t.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	return &t, nil
}
