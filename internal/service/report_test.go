package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/tax"
)

// mockTransactionService is a mock implementation of
// domain.TransactionService for testing.
type mockTransactionService struct {
	listFunc func(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	return m.listFunc(ctx, tenantID, filter)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, tenantID pgtype.UUID, params domain.CreateTransactionParams) (*domain.Transaction, error) {
	return nil, domain.Invalid("transaction.create", "not implemented")
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, tenantID, id pgtype.UUID) (*domain.Transaction, error) {
	return nil, domain.ErrTransactionNotFound
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, tenantID, id pgtype.UUID) error {
	return domain.ErrTransactionNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func txn(txnType domain.TransactionType, amount float64, jurisdiction string, treatment tax.Treatment) domain.Transaction {
	return domain.Transaction{
		Date:         time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Amount:       amount,
		Type:         txnType,
		Category:     "Office",
		Jurisdiction: jurisdiction,
		Treatment:    treatment,
	}
}

func TestTaxSummary_AggregatesCollectedAndPaid(t *testing.T) {
	store := &mockTransactionService{
		listFunc: func(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
			assert.Equal(t, 2024, filter.Year)
			return []domain.Transaction{
				// $113 of Ontario revenue embeds $13 HST.
				txn(domain.TransactionIncome, 113, "ON", tax.TreatmentStandard),
				// $226 more revenue embeds $26 HST.
				txn(domain.TransactionIncome, 226, "ON", tax.TreatmentStandard),
				// $113 of Ontario expense embeds $13 HST.
				txn(domain.TransactionExpense, 113, "ON", tax.TreatmentStandard),
			}, nil
		},
	}

	svc := NewReportService(store, testLogger())
	summary, err := svc.TaxSummary(context.Background(), pgtype.UUID{}, 2024)
	require.NoError(t, err)

	assert.Equal(t, 2024, summary.Year)
	assert.InDelta(t, 39.0, summary.Collected.HST, 1e-9)
	assert.InDelta(t, 39.0, summary.Collected.Total, 1e-9)
	assert.InDelta(t, 13.0, summary.Paid.Total, 1e-9)
	assert.InDelta(t, 26.0, summary.NetOwing, 1e-9)
}

func TestTaxSummary_HonorsPerTransactionJurisdictionAndTreatment(t *testing.T) {
	store := &mockTransactionService{
		listFunc: func(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
			return []domain.Transaction{
				// Quebec sale: $1149.75 = $1000 + $50 GST + $99.75 QST.
				txn(domain.TransactionIncome, 1149.75, "QC", tax.TreatmentStandard),
				// Exempt income carries no embedded tax.
				txn(domain.TransactionIncome, 500, "QC", tax.TreatmentExempt),
			}, nil
		},
	}

	svc := NewReportService(store, testLogger())
	summary, err := svc.TaxSummary(context.Background(), pgtype.UUID{}, 2024)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, summary.Collected.GST, 1e-6)
	assert.InDelta(t, 99.75, summary.Collected.PST, 1e-6)
	assert.Zero(t, summary.Paid.Total)
}

func TestTaxSummary_EmptyYear(t *testing.T) {
	store := &mockTransactionService{
		listFunc: func(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
			return nil, nil
		},
	}

	svc := NewReportService(store, testLogger())
	summary, err := svc.TaxSummary(context.Background(), pgtype.UUID{}, 2024)
	require.NoError(t, err)

	assert.Equal(t, &TaxSummary{Year: 2024}, summary)
}

func TestExportCSV_RendersStoredExpenses(t *testing.T) {
	store := &mockTransactionService{
		listFunc: func(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
			assert.Equal(t, domain.TransactionExpense, filter.Type)
			return []domain.Transaction{
				{
					Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
					Amount:      105.00,
					Type:        domain.TransactionExpense,
					Category:    "Meals",
					Description: "Client lunch",
				},
			}, nil
		},
	}

	svc := NewReportService(store, testLogger())
	csv, err := svc.ExportCSV(context.Background(), pgtype.UUID{}, 2024)
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `2024-03-15,"Client lunch",Meals,8523,105.00,5.00,100.00,50.00`, lines[1])
}

func TestExportCSV_PropagatesStoreErrors(t *testing.T) {
	store := &mockTransactionService{
		listFunc: func(ctx context.Context, tenantID pgtype.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
			return nil, domain.Errorf(domain.EINTERNAL, "transaction.list", "connection lost")
		},
	}

	svc := NewReportService(store, testLogger())
	_, err := svc.ExportCSV(context.Background(), pgtype.UUID{}, 2024)
	require.Error(t, err)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
}
