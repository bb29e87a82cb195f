package domain

import (
	"math"
	"testing"
	"time"

	"github.com/northbooks/tally/internal/tax"
)

func validParams() CreateTransactionParams {
	return CreateTransactionParams{
		Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:       99.50,
		Type:         TransactionExpense,
		Category:     "Office",
		Description:  "printer paper",
		Jurisdiction: "ON",
		Treatment:    tax.TreatmentStandard,
	}
}

func TestCreateTransactionParams_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateTransactionParams)
		wantCode string
	}{
		{
			name:   "valid params",
			mutate: func(p *CreateTransactionParams) {},
		},
		{
			name:   "empty treatment allowed",
			mutate: func(p *CreateTransactionParams) { p.Treatment = "" },
		},
		{
			name:     "zero amount rejected",
			mutate:   func(p *CreateTransactionParams) { p.Amount = 0 },
			wantCode: EINVALID,
		},
		{
			name:     "negative amount rejected",
			mutate:   func(p *CreateTransactionParams) { p.Amount = -10 },
			wantCode: EINVALID,
		},
		{
			name:     "NaN amount rejected",
			mutate:   func(p *CreateTransactionParams) { p.Amount = math.NaN() },
			wantCode: EINVALID,
		},
		{
			name:     "infinite amount rejected",
			mutate:   func(p *CreateTransactionParams) { p.Amount = math.Inf(1) },
			wantCode: EINVALID,
		},
		{
			name:     "unknown type rejected",
			mutate:   func(p *CreateTransactionParams) { p.Type = "transfer" },
			wantCode: EINVALID,
		},
		{
			name:     "missing category rejected",
			mutate:   func(p *CreateTransactionParams) { p.Category = "" },
			wantCode: EINVALID,
		},
		{
			name:     "bad treatment rejected",
			mutate:   func(p *CreateTransactionParams) { p.Treatment = "taxable" },
			wantCode: EINVALID,
		},
		{
			name:     "zero date rejected",
			mutate:   func(p *CreateTransactionParams) { p.Date = time.Time{} },
			wantCode: EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := ErrorCode(err); got != tt.wantCode {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}
