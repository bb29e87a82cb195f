package tax

// Treatment controls how much of the jurisdiction's rate applies to a
// line item.
type Treatment string

const (
	// TreatmentStandard applies the full jurisdiction rate.
	TreatmentStandard Treatment = "standard"

	// TreatmentGSTOnly applies the 5% federal component only, even in
	// harmonized provinces.
	TreatmentGSTOnly Treatment = "gst_only"

	// TreatmentExempt and TreatmentZeroRated both compute to zero tax.
	// They are legally distinct categories; the distinction matters for
	// reporting labels, not arithmetic.
	TreatmentExempt    Treatment = "exempt"
	TreatmentZeroRated Treatment = "zero_rated"
)

// Valid reports whether t is one of the known treatment codes.
func (t Treatment) Valid() bool {
	switch t {
	case TreatmentStandard, TreatmentGSTOnly, TreatmentExempt, TreatmentZeroRated:
		return true
	}
	return false
}

// zeroRated reports whether the treatment short-circuits to a zero breakdown.
func (t Treatment) zeroRated() bool {
	return t == TreatmentExempt || t == TreatmentZeroRated
}

// Breakdown is the tax computed on an amount, split by component.
// Values are unrounded; display rounding is the caller's concern.
type Breakdown struct {
	GST   float64 `json:"gst"`
	PST   float64 `json:"pst"`
	HST   float64 `json:"hst"`
	Total float64 `json:"total"`
}

// Add accumulates another breakdown into b. Used when aggregating
// per-transaction breakdowns into period totals.
func (b *Breakdown) Add(other Breakdown) {
	b.GST += other.GST
	b.PST += other.PST
	b.HST += other.HST
	b.Total += other.Total
}

// Extraction is a breakdown recovered from a tax-inclusive amount,
// together with the pre-tax net.
type Extraction struct {
	Breakdown
	Net float64 `json:"net"`
}

// Calculate computes the tax owed on a pre-tax amount.
//
// Exempt and zero-rated treatments short-circuit to a zero breakdown.
// gst_only charges the federal 5% and nothing else, overriding the
// jurisdiction's own type. Standard treatment branches on whether the
// jurisdiction is harmonized. A zero amount yields a zero breakdown;
// negative amounts pass through signed, so refund lines produce negative
// breakdowns. Callers that need to reject negatives do so at their own
// boundary.
func Calculate(amount float64, treatment Treatment, jurisdiction string) Breakdown {
	var b Breakdown
	if treatment.zeroRated() {
		return b
	}

	rate := LookupRate(jurisdiction)
	switch {
	case treatment == TreatmentGSTOnly:
		b.GST = amount * FederalGSTRate
	case rate.Type == RateTypeHST:
		b.HST = amount * rate.HST
	default:
		b.GST = amount * rate.GST
		b.PST = amount * rate.PST
	}
	b.Total = b.GST + b.PST + b.HST
	return b
}

// Extract recovers the pre-tax net and embedded tax components from a
// tax-inclusive amount. This is the inverse of Calculate and is used when
// amounts represent final charged totals (point-of-sale revenue) rather
// than line-item prices.
//
// The net is inclusive / (1 + combined rate); each component is then
// computed from the net base, so net + gst + pst + hst reproduces the
// inclusive amount to floating-point precision.
func Extract(inclusive float64, treatment Treatment, jurisdiction string) Extraction {
	var e Extraction
	if treatment.zeroRated() {
		e.Net = inclusive
		return e
	}

	rate := LookupRate(jurisdiction)
	var gstRate, pstRate, hstRate float64
	switch {
	case treatment == TreatmentGSTOnly:
		gstRate = FederalGSTRate
	case rate.Type == RateTypeHST:
		hstRate = rate.HST
	default:
		gstRate = rate.GST
		pstRate = rate.PST
	}

	combined := gstRate + pstRate + hstRate
	e.Net = inclusive / (1 + combined)
	e.GST = e.Net * gstRate
	e.PST = e.Net * pstRate
	e.HST = e.Net * hstRate
	e.Total = inclusive - e.Net
	return e
}
