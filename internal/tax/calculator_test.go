package tax_test

import (
	"math"
	"testing"

	"github.com/northbooks/tally/internal/tax"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_OntarioStandardInvoice(t *testing.T) {
	b := tax.Calculate(1000, tax.TreatmentStandard, "ON")

	assert.Equal(t, 0.0, b.GST)
	assert.Equal(t, 0.0, b.PST)
	assert.InDelta(t, 130.0, b.HST, 1e-9, "13%% HST on $1000")
	assert.InDelta(t, 130.0, b.Total, 1e-9)
}

func TestCalculate_QuebecSplitsGSTAndQST(t *testing.T) {
	b := tax.Calculate(1000, tax.TreatmentStandard, "QC")

	assert.InDelta(t, 50.0, b.GST, 1e-9)
	assert.InDelta(t, 99.75, b.PST, 1e-9)
	assert.Equal(t, 0.0, b.HST)
	assert.InDelta(t, 149.75, b.Total, 1e-9)
}

func TestCalculate_StandardTreatment(t *testing.T) {
	tests := []struct {
		name         string
		jurisdiction string
		amount       float64
		wantGST      float64
		wantPST      float64
		wantHST      float64
	}{
		{name: "Alberta GST only province", jurisdiction: "AB", amount: 200, wantGST: 10},
		{name: "BC GST plus PST", jurisdiction: "BC", amount: 100, wantGST: 5, wantPST: 7},
		{name: "Saskatchewan six percent PST", jurisdiction: "SK", amount: 100, wantGST: 5, wantPST: 6},
		{name: "Nova Scotia fifteen percent HST", jurisdiction: "NS", amount: 100, wantHST: 15},
		{name: "zero amount yields zero breakdown", jurisdiction: "ON", amount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tax.Calculate(tt.amount, tax.TreatmentStandard, tt.jurisdiction)
			assert.InDelta(t, tt.wantGST, b.GST, 1e-9)
			assert.InDelta(t, tt.wantPST, b.PST, 1e-9)
			assert.InDelta(t, tt.wantHST, b.HST, 1e-9)
			assert.InDelta(t, tt.wantGST+tt.wantPST+tt.wantHST, b.Total, 1e-9)
		})
	}
}

// gst_only must isolate the 5% federal slice everywhere, including
// harmonized provinces.
func TestCalculate_GSTOnlyIsolatesFederalRate(t *testing.T) {
	for code := range tax.Rates() {
		b := tax.Calculate(1000, tax.TreatmentGSTOnly, code)

		assert.InDelta(t, 50.0, b.GST, 1e-9, "jurisdiction %s", code)
		assert.Zero(t, b.PST, "jurisdiction %s", code)
		assert.Zero(t, b.HST, "jurisdiction %s", code)
	}
}

func TestCalculate_ExemptAndZeroRatedShortCircuit(t *testing.T) {
	for _, treatment := range []tax.Treatment{tax.TreatmentExempt, tax.TreatmentZeroRated} {
		for _, amount := range []float64{0, 1, 99.99, 123456.78} {
			b := tax.Calculate(amount, treatment, "ON")
			assert.Equal(t, tax.Breakdown{}, b, "%s on %v", treatment, amount)
		}
	}
}

func TestCalculate_UnknownJurisdictionMatchesOntario(t *testing.T) {
	assert.Equal(t,
		tax.Calculate(100, tax.TreatmentStandard, "ON"),
		tax.Calculate(100, tax.TreatmentStandard, "XX"))
}

func TestCalculate_NegativeAmountPassesThroughSigned(t *testing.T) {
	refund := tax.Calculate(-100, tax.TreatmentStandard, "ON")
	charge := tax.Calculate(100, tax.TreatmentStandard, "ON")

	assert.InDelta(t, -charge.Total, refund.Total, 1e-9)
}

func TestExtract_ExemptReturnsAmountAsNet(t *testing.T) {
	e := tax.Extract(250, tax.TreatmentExempt, "BC")

	assert.Equal(t, tax.Breakdown{}, e.Breakdown)
	assert.Equal(t, 250.0, e.Net)
}

func TestExtract_OntarioInclusiveAmount(t *testing.T) {
	// $113 charged in Ontario is $100 plus $13 HST.
	e := tax.Extract(113, tax.TreatmentStandard, "ON")

	assert.InDelta(t, 100.0, e.Net, 1e-9)
	assert.InDelta(t, 13.0, e.HST, 1e-9)
	assert.InDelta(t, 13.0, e.Total, 1e-9)
	assert.Zero(t, e.GST)
	assert.Zero(t, e.PST)
}

func TestExtract_QuebecComponentsSplitFromNetBase(t *testing.T) {
	e := tax.Extract(1149.75, tax.TreatmentStandard, "QC")

	assert.InDelta(t, 1000.0, e.Net, 1e-6)
	assert.InDelta(t, 50.0, e.GST, 1e-6)
	assert.InDelta(t, 99.75, e.PST, 1e-6)
	assert.InDelta(t, e.GST+e.PST, e.Total, 1e-9, "component sum must equal total tax")
}

// Round trip: calculating tax on A and extracting from A+tax must
// recover A as the net.
func TestExtract_RoundTripsCalculate(t *testing.T) {
	amounts := []float64{0.01, 1, 49.99, 100, 1234.56, 99999.99}
	treatments := []tax.Treatment{tax.TreatmentStandard, tax.TreatmentGSTOnly}

	for code := range tax.Rates() {
		for _, treatment := range treatments {
			for _, amount := range amounts {
				b := tax.Calculate(amount, treatment, code)
				e := tax.Extract(amount+b.Total, treatment, code)

				assert.InEpsilon(t, amount, e.Net, 1e-6,
					"%s/%s on %v: net %v", code, treatment, amount, e.Net)
			}
		}
	}
}

// Conservation: net plus all components must reproduce the inclusive
// amount for every jurisdiction and treatment.
func TestExtract_Conservation(t *testing.T) {
	amounts := []float64{0.01, 1, 87.65, 1000, 54321.09}
	treatments := []tax.Treatment{
		tax.TreatmentStandard,
		tax.TreatmentGSTOnly,
		tax.TreatmentExempt,
		tax.TreatmentZeroRated,
	}

	for code := range tax.Rates() {
		for _, treatment := range treatments {
			for _, inclusive := range amounts {
				e := tax.Extract(inclusive, treatment, code)
				sum := e.Net + e.GST + e.PST + e.HST

				if math.Abs(sum-inclusive) > 1e-9*inclusive {
					t.Errorf("%s/%s: net+components = %v, want %v", code, treatment, sum, inclusive)
				}
			}
		}
	}
}

func TestTreatment_Valid(t *testing.T) {
	for _, valid := range []tax.Treatment{"standard", "gst_only", "exempt", "zero_rated"} {
		assert.True(t, valid.Valid(), "%s", valid)
	}
	for _, invalid := range []tax.Treatment{"", "Standard", "taxable", "gst"} {
		assert.False(t, invalid.Valid(), "%s", invalid)
	}
}

func TestBreakdown_Add(t *testing.T) {
	var total tax.Breakdown
	total.Add(tax.Breakdown{GST: 5, PST: 7, Total: 12})
	total.Add(tax.Breakdown{HST: 13, Total: 13})

	assert.Equal(t, tax.Breakdown{GST: 5, PST: 7, HST: 13, Total: 25}, total)
}
