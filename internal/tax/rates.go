// Package tax computes Canadian GST/PST/HST breakdowns, categorizes
// expenses against CRA T2125 line codes, and renders the annual
// deduction report. Everything here is pure: no I/O, no shared state,
// safe to call from any goroutine.
package tax

// RateType identifies which sales taxes a jurisdiction levies.
type RateType string

const (
	RateTypeGST    RateType = "GST"     // federal GST only (AB, NT, NU, YT)
	RateTypeHST    RateType = "HST"     // harmonized single rate
	RateTypeGSTPST RateType = "GST+PST" // federal GST plus provincial sales tax
	RateTypeGSTQST RateType = "GST+QST" // federal GST plus Quebec sales tax
)

// JurisdictionRate holds the sales tax rates for one province or territory.
// Rates are decimal fractions (0.05 = 5%). A jurisdiction is either
// harmonized (HST set, GST/PST zero) or split (GST and possibly PST set,
// HST zero), never both.
type JurisdictionRate struct {
	Label string   `json:"label"`
	GST   float64  `json:"gst"`
	PST   float64  `json:"pst"`
	HST   float64  `json:"hst"`
	Type  RateType `json:"type"`
}

// DefaultJurisdiction is used when a caller supplies a code we don't know.
// Unknown codes are not an error: callers get Ontario rates back.
const DefaultJurisdiction = "ON"

// FederalGSTRate is the federal GST component. The gst_only treatment
// applies exactly this rate regardless of jurisdiction, and the deduction
// report assumes it is embedded in every expense.
const FederalGSTRate = 0.05

var jurisdictionRates = map[string]JurisdictionRate{
	"AB": {Label: "Alberta", GST: 0.05, Type: RateTypeGST},
	"BC": {Label: "British Columbia", GST: 0.05, PST: 0.07, Type: RateTypeGSTPST},
	"MB": {Label: "Manitoba", GST: 0.05, PST: 0.07, Type: RateTypeGSTPST},
	"NB": {Label: "New Brunswick", HST: 0.15, Type: RateTypeHST},
	"NL": {Label: "Newfoundland and Labrador", HST: 0.15, Type: RateTypeHST},
	"NS": {Label: "Nova Scotia", HST: 0.15, Type: RateTypeHST},
	"NT": {Label: "Northwest Territories", GST: 0.05, Type: RateTypeGST},
	"NU": {Label: "Nunavut", GST: 0.05, Type: RateTypeGST},
	"ON": {Label: "Ontario", HST: 0.13, Type: RateTypeHST},
	"PE": {Label: "Prince Edward Island", HST: 0.15, Type: RateTypeHST},
	"QC": {Label: "Quebec", GST: 0.05, PST: 0.09975, Type: RateTypeGSTQST},
	"SK": {Label: "Saskatchewan", GST: 0.05, PST: 0.06, Type: RateTypeGSTPST},
	"YT": {Label: "Yukon", GST: 0.05, Type: RateTypeGST},
}

// LookupRate returns the rate table entry for a two-letter jurisdiction
// code. Unknown codes fall back to DefaultJurisdiction; this is a
// compatibility guarantee, not an error path.
func LookupRate(code string) JurisdictionRate {
	if rate, ok := jurisdictionRates[code]; ok {
		return rate
	}
	return jurisdictionRates[DefaultJurisdiction]
}

// Rates returns a copy of the full jurisdiction rate table.
func Rates() map[string]JurisdictionRate {
	out := make(map[string]JurisdictionRate, len(jurisdictionRates))
	for code, rate := range jurisdictionRates {
		out[code] = rate
	}
	return out
}
