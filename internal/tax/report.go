package tax

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Transaction is the slice of a ledger record the deduction report
// consumes. It is deliberately smaller than the stored entity: the report
// owns none of this data.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Amount      float64
	Type        string // "income" or "expense"
}

const reportHeader = "Date,Description,Category,CRA Line,Total Amount,GST/HST Paid,Net Expense,Deductible Amount"

// GenerateReport renders the year's expenses as a CSV deduction ledger.
//
// Rows keep the input order; only expenses dated in the given year are
// included. Each row assumes a flat 5% GST embedded in the expense total,
// whatever the transaction's province or treatment — the jurisdiction-aware
// engine is used by the summary path, not here. Descriptions are always
// double-quoted with internal quotes doubled; money is formatted to two
// decimals. An empty result is a header-only document, not an error.
func GenerateReport(transactions []Transaction, year int) string {
	var b strings.Builder
	b.WriteString(reportHeader)

	for _, t := range transactions {
		if t.Type != "expense" || t.Date.Year() != year {
			continue
		}

		category := Categorize(t.Category)
		total := math.Abs(t.Amount)
		gstPaid := total * (FederalGSTRate / (1 + FederalGSTRate))
		net := total - gstPaid
		deductible := net * category.DeductibleRate

		b.WriteByte('\n')
		fmt.Fprintf(&b, "%s,%s,%s,%s,%.2f,%.2f,%.2f,%.2f",
			t.Date.Format("2006-01-02"),
			quote(t.Description),
			t.Category,
			category.Code,
			total,
			gstPaid,
			net,
			deductible,
		)
	}

	return b.String()
}

// quote wraps s in double quotes, doubling any quotes it contains.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
