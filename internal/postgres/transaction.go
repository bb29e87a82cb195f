// Package postgres implements the domain service interfaces over a
// PostgreSQL connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/tax"
)

// TransactionService implements domain.TransactionService using PostgreSQL.
type TransactionService struct {
	db *pgxpool.Pool
}

// Compile-time check to ensure TransactionService implements domain.TransactionService.
var _ domain.TransactionService = (*TransactionService)(nil)

// NewTransactionService creates a new TransactionService instance.
func NewTransactionService(db *pgxpool.Pool) *TransactionService {
	return &TransactionService{db: db}
}

const transactionColumns = `id, tenant_id, occurred_on, amount, type, category, description, jurisdiction, treatment, created_at`

// CreateTransaction validates and stores a new transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, tenantID pgtype.UUID, params domain.CreateTransactionParams) (*domain.Transaction, error) {
	const op = "transaction.create"

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Jurisdiction == "" {
		params.Jurisdiction = tax.DefaultJurisdiction
	}
	if params.Treatment == "" {
		params.Treatment = tax.TreatmentStandard
	}

	var id pgtype.UUID
	if err := id.Scan(uuid.New().String()); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to generate transaction ID")
	}

	const q = `
		INSERT INTO transactions (id, tenant_id, occurred_on, amount, type, category, description, jurisdiction, treatment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + transactionColumns

	row := s.db.QueryRow(ctx, q,
		id, tenantID, params.Date, params.Amount, string(params.Type),
		params.Category, params.Description, params.Jurisdiction, string(params.Treatment),
	)

	txn, err := scanTransaction(row)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to store transaction")
	}
	return txn, nil
}

// GetTransaction retrieves a transaction by ID within the tenant.
func (s *TransactionService) GetTransaction(ctx context.Context, tenantID, id pgtype.UUID) (*domain.Transaction, error) {
	const op = "transaction.get"

	const q = `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1 AND id = $2`

	txn, err := scanTransaction(s.db.QueryRow(ctx, q, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to load transaction")
	}
	return txn, nil
}

// ListTransactions lists transactions matching the filter, ordered by
// date then insertion order.
func (s *TransactionService) ListTransactions(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	const op = "transaction.list"

	q := `SELECT ` + transactionColumns + ` FROM transactions WHERE tenant_id = $1`
	args := []any{tenantID}

	if filter.Year != 0 {
		args = append(args, filter.Year)
		q += fmt.Sprintf(" AND date_part('year', occurred_on) = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		q += fmt.Sprintf(" AND type = $%d", len(args))
	}
	q += " ORDER BY occurred_on, created_at"

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to query transactions")
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to scan transaction")
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, "failed to read transactions")
	}

	return txns, nil
}

// DeleteTransaction removes a transaction within the tenant.
func (s *TransactionService) DeleteTransaction(ctx context.Context, tenantID, id pgtype.UUID) error {
	const op = "transaction.delete"

	const q = `DELETE FROM transactions WHERE tenant_id = $1 AND id = $2`

	tag, err := s.db.Exec(ctx, q, tenantID, id)
	if err != nil {
		return domain.WrapError(err, domain.EINTERNAL, op, "failed to delete transaction")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// scanTransaction reads one transaction row in transactionColumns order.
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn       domain.Transaction
		txnType   string
		treatment string
	)
	err := row.Scan(
		&txn.ID, &txn.TenantID, &txn.Date, &txn.Amount, &txnType,
		&txn.Category, &txn.Description, &txn.Jurisdiction, &treatment, &txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	txn.Type = domain.TransactionType(txnType)
	txn.Treatment = tax.Treatment(treatment)
	return &txn, nil
}
