// Package api contains the JSON API handlers.
package api

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/handler"
	"github.com/northbooks/tally/internal/tax"
)

// TaxHandler serves the stateless tax calculation endpoints.
type TaxHandler struct {
	defaultJurisdiction string
	validate            *validator.Validate
}

// NewTaxHandler creates a new tax handler. defaultJurisdiction is applied
// when a request omits the jurisdiction field.
func NewTaxHandler(defaultJurisdiction string, validate *validator.Validate) *TaxHandler {
	if defaultJurisdiction == "" {
		defaultJurisdiction = tax.DefaultJurisdiction
	}
	return &TaxHandler{
		defaultJurisdiction: defaultJurisdiction,
		validate:            validate,
	}
}

// taxRequest is the body for both calculate and extract. Amount is a
// pointer so a missing field is distinguishable from a legitimate zero.
type taxRequest struct {
	Amount       *float64 `json:"amount" validate:"required"`
	Treatment    string   `json:"treatment" validate:"required,oneof=standard gst_only exempt zero_rated"`
	Jurisdiction string   `json:"jurisdiction" validate:"omitempty,len=2"`
}

// decode parses and validates the request body, applying the default
// jurisdiction. Amounts must be finite and non-negative: the engine would
// happily pass a signed amount through, but refunds are represented as
// separate records, not negative requests.
func (h *TaxHandler) decode(r *http.Request, op string) (amount float64, treatment tax.Treatment, jurisdiction string, err error) {
	var req taxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return 0, "", "", domain.Invalid(op, "malformed JSON body")
	}
	if err := h.validate.Struct(req); err != nil {
		return 0, "", "", domain.WrapError(err, domain.EINVALID, op, "amount and a valid treatment are required")
	}
	if math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0) {
		return 0, "", "", domain.Invalid(op, "amount must be a finite number")
	}
	if *req.Amount < 0 {
		return 0, "", "", domain.Invalid(op, "amount must not be negative")
	}

	jurisdiction = req.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = h.defaultJurisdiction
	}
	return *req.Amount, tax.Treatment(req.Treatment), jurisdiction, nil
}

// Calculate handles POST /api/tax/calculate.
// The amount is pre-tax; the response is the tax owed on top.
func (h *TaxHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	amount, treatment, jurisdiction, err := h.decode(r, "tax.calculate")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, tax.Calculate(amount, treatment, jurisdiction))
}

// Extract handles POST /api/tax/extract.
// The amount is tax-inclusive; the response recovers the net and the
// embedded components.
func (h *TaxHandler) Extract(w http.ResponseWriter, r *http.Request) {
	amount, treatment, jurisdiction, err := h.decode(r, "tax.extract")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, tax.Extract(amount, treatment, jurisdiction))
}

// Rates handles GET /api/tax/rates.
func (h *TaxHandler) Rates(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, tax.Rates())
}
