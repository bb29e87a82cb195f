// Package service contains application services that orchestrate the tax
// engine over stored transactions.
package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/tax"
)

// TaxSummary aggregates jurisdiction-aware tax extraction across a year's
// transactions: tax collected on income, tax paid on expenses, and the
// balance owing.
type TaxSummary struct {
	Year      int           `json:"year"`
	Collected tax.Breakdown `json:"collected"`
	Paid      tax.Breakdown `json:"paid"`
	NetOwing  float64       `json:"net_owing"`
}

// ReportService computes tax summaries and renders CSV exports.
type ReportService struct {
	transactions domain.TransactionService
	logger       *slog.Logger
}

// NewReportService creates a new ReportService instance.
func NewReportService(transactions domain.TransactionService, logger *slog.Logger) *ReportService {
	return &ReportService{
		transactions: transactions,
		logger:       logger,
	}
}

// TaxSummary computes the year's collected/paid/owing totals for a tenant.
//
// Every stored amount is tax-inclusive, so each transaction runs through
// the jurisdiction-aware extraction before aggregation. Unlike the CSV
// export, this path honors each transaction's own province and treatment.
func (s *ReportService) TaxSummary(ctx context.Context, tenantID pgtype.UUID, year int) (*TaxSummary, error) {
	txns, err := s.transactions.ListTransactions(ctx, tenantID, domain.TransactionFilter{Year: year})
	if err != nil {
		return nil, err
	}

	summary := &TaxSummary{Year: year}
	for _, t := range txns {
		e := tax.Extract(math.Abs(t.Amount), t.Treatment, t.Jurisdiction)
		switch t.Type {
		case domain.TransactionIncome:
			summary.Collected.Add(e.Breakdown)
		case domain.TransactionExpense:
			summary.Paid.Add(e.Breakdown)
		}
	}
	summary.NetOwing = summary.Collected.Total - summary.Paid.Total

	s.logger.Debug("computed tax summary",
		"year", year,
		"transactions", len(txns),
		"collected", summary.Collected.Total,
		"paid", summary.Paid.Total,
	)

	return summary, nil
}

// ExportCSV renders the tenant's deduction report for the year.
func (s *ReportService) ExportCSV(ctx context.Context, tenantID pgtype.UUID, year int) (string, error) {
	txns, err := s.transactions.ListTransactions(ctx, tenantID, domain.TransactionFilter{
		Year: year,
		Type: domain.TransactionExpense,
	})
	if err != nil {
		return "", err
	}

	lines := make([]tax.Transaction, len(txns))
	for i, t := range txns {
		lines[i] = tax.Transaction{
			Date:        t.Date,
			Description: t.Description,
			Category:    t.Category,
			Amount:      t.Amount,
			Type:        string(t.Type),
		}
	}

	return tax.GenerateReport(lines, year), nil
}
