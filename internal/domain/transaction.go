package domain

import (
	"context"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/northbooks/tally/internal/tax"
)

// Transaction-related domain errors.
var (
	ErrTransactionNotFound = &Error{Code: ENOTFOUND, Message: "Transaction not found"}
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a single ledger record. Amounts are tax-inclusive for
// both income and expense records; the tax engine recovers the embedded
// components on demand.
type Transaction struct {
	ID           pgtype.UUID
	TenantID     pgtype.UUID
	Date         time.Time
	Amount       float64
	Type         TransactionType
	Category     string
	Description  string
	Jurisdiction string
	Treatment    tax.Treatment
	CreatedAt    time.Time
}

// CreateTransactionParams carries the caller-supplied fields for a new
// transaction. Validation happens here, at the edge, so the tax engine
// itself stays total.
type CreateTransactionParams struct {
	Date         time.Time
	Amount       float64
	Type         TransactionType
	Category     string
	Description  string
	Jurisdiction string
	Treatment    tax.Treatment
}

// Validate checks the params before they reach storage. Amounts must be
// positive and finite; negative records (refunds) are represented as
// expenses of the refunded amount, not signed income.
func (p CreateTransactionParams) Validate() error {
	const op = "transaction.create"

	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
		return Invalid(op, "amount must be a finite number")
	}
	if p.Amount <= 0 {
		return Invalid(op, "amount must be greater than zero")
	}
	if !p.Type.Valid() {
		return Invalid(op, "type must be income or expense")
	}
	if p.Category == "" {
		return Invalid(op, "category is required")
	}
	if p.Treatment != "" && !p.Treatment.Valid() {
		return Invalid(op, "treatment must be standard, gst_only, exempt, or zero_rated")
	}
	if p.Date.IsZero() {
		return Invalid(op, "date is required")
	}
	return nil
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "no filter" for that field.
type TransactionFilter struct {
	Year int
	Type TransactionType
}

// TransactionService manages the tenant-scoped transaction ledger.
type TransactionService interface {
	// CreateTransaction validates and stores a new transaction.
	CreateTransaction(ctx context.Context, tenantID pgtype.UUID, params CreateTransactionParams) (*Transaction, error)

	// GetTransaction retrieves a transaction by ID within the tenant.
	GetTransaction(ctx context.Context, tenantID, id pgtype.UUID) (*Transaction, error)

	// ListTransactions lists transactions matching the filter, ordered by
	// date then insertion order.
	ListTransactions(ctx context.Context, tenantID pgtype.UUID, filter TransactionFilter) ([]Transaction, error)

	// DeleteTransaction removes a transaction within the tenant.
	DeleteTransaction(ctx context.Context, tenantID, id pgtype.UUID) error
}
