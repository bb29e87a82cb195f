package tax_test

import (
	"testing"

	"github.com/northbooks/tally/internal/tax"
	"github.com/stretchr/testify/assert"
)

func TestLookupRate_KnownJurisdictions(t *testing.T) {
	tests := []struct {
		code     string
		label    string
		rateType tax.RateType
	}{
		{"AB", "Alberta", tax.RateTypeGST},
		{"BC", "British Columbia", tax.RateTypeGSTPST},
		{"ON", "Ontario", tax.RateTypeHST},
		{"QC", "Quebec", tax.RateTypeGSTQST},
		{"NS", "Nova Scotia", tax.RateTypeHST},
		{"YT", "Yukon", tax.RateTypeGST},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rate := tax.LookupRate(tt.code)
			assert.Equal(t, tt.label, rate.Label)
			assert.Equal(t, tt.rateType, rate.Type)
		})
	}
}

// Unknown codes must silently resolve to Ontario. This is a documented
// fallback, not an error.
func TestLookupRate_UnknownFallsBackToOntario(t *testing.T) {
	ontario := tax.LookupRate("ON")

	for _, code := range []string{"XX", "", "on", "ONT", "ZZ"} {
		assert.Equal(t, ontario, tax.LookupRate(code), "code %q should fall back to ON", code)
	}
}

// A jurisdiction is harmonized or split, never both. Every table entry
// must have either HST set with GST/PST zero, or the reverse.
func TestRates_HarmonizedOrSplitNeverBoth(t *testing.T) {
	for code, rate := range tax.Rates() {
		if rate.HST > 0 {
			assert.Zero(t, rate.GST, "%s: harmonized jurisdiction has GST set", code)
			assert.Zero(t, rate.PST, "%s: harmonized jurisdiction has PST set", code)
			assert.Equal(t, tax.RateTypeHST, rate.Type, "%s: HST rate without HST type", code)
		} else {
			assert.Zero(t, rate.HST, "%s: split jurisdiction has HST set", code)
			assert.Equal(t, tax.FederalGSTRate, rate.GST, "%s: federal component should be 5%%", code)
		}
	}
}

func TestRates_CoversAllProvincesAndTerritories(t *testing.T) {
	rates := tax.Rates()
	assert.Len(t, rates, 13)
	for _, code := range []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"} {
		assert.Contains(t, rates, code)
	}
}

func TestRates_ReturnsCopy(t *testing.T) {
	rates := tax.Rates()
	rates["ON"] = tax.JurisdictionRate{Label: "mutated"}

	assert.Equal(t, "Ontario", tax.LookupRate("ON").Label, "mutating the returned map must not touch the table")
}
