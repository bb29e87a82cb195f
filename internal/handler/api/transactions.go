package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/handler"
	"github.com/northbooks/tally/internal/tax"
	"github.com/northbooks/tally/internal/tenant"
)

// TransactionHandler serves the tenant-scoped transaction ledger.
type TransactionHandler struct {
	transactions domain.TransactionService
	validate     *validator.Validate
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactions domain.TransactionService, validate *validator.Validate) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		validate:     validate,
	}
}

// transactionResponse is the JSON shape of a stored transaction.
type transactionResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Type         string  `json:"type"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Jurisdiction string  `json:"jurisdiction"`
	Treatment    string  `json:"treatment"`
}

func toResponse(t *domain.Transaction) transactionResponse {
	id, _ := t.ID.Value()
	idStr, _ := id.(string)
	return transactionResponse{
		ID:           idStr,
		Date:         t.Date.Format("2006-01-02"),
		Amount:       t.Amount,
		Type:         string(t.Type),
		Category:     t.Category,
		Description:  t.Description,
		Jurisdiction: t.Jurisdiction,
		Treatment:    string(t.Treatment),
	}
}

// createTransactionRequest is the body for POST /api/transactions.
type createTransactionRequest struct {
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	Amount       *float64 `json:"amount" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=income expense"`
	Category     string   `json:"category" validate:"required"`
	Description  string   `json:"description"`
	Jurisdiction string   `json:"jurisdiction" validate:"omitempty,len=2"`
	Treatment    string   `json:"treatment" validate:"omitempty,oneof=standard gst_only exempt zero_rated"`
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "transaction.create"

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.ErrorResponse(w, r, domain.Invalid(op, "malformed JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		handler.ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "invalid transaction fields"))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Invalid(op, "date must be formatted YYYY-MM-DD"))
		return
	}

	txn, err := h.transactions.CreateTransaction(r.Context(), tenant.IDFromContext(r.Context()), domain.CreateTransactionParams{
		Date:         date,
		Amount:       *req.Amount,
		Type:         domain.TransactionType(req.Type),
		Category:     req.Category,
		Description:  req.Description,
		Jurisdiction: req.Jurisdiction,
		Treatment:    tax.Treatment(req.Treatment),
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, toResponse(txn))
}

// List handles GET /api/transactions?year=&type=.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "transaction.list"

	var filter domain.TransactionFilter
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			handler.ErrorResponse(w, r, domain.Invalid(op, "year must be an integer"))
			return
		}
		filter.Year = year
	}
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		filter.Type = domain.TransactionType(typeParam)
		if !filter.Type.Valid() {
			handler.ErrorResponse(w, r, domain.Invalid(op, "type must be income or expense"))
			return
		}
	}

	txns, err := h.transactions.ListTransactions(r.Context(), tenant.IDFromContext(r.Context()), filter)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	out := make([]transactionResponse, len(txns))
	for i := range txns {
		out[i] = toResponse(&txns[i])
	}
	handler.RespondJSON(w, http.StatusOK, out)
}

// Get handles GET /api/transactions/{id}.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "transaction.get")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	txn, err := h.transactions.GetTransaction(r.Context(), tenant.IDFromContext(r.Context()), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, toResponse(txn))
}

// Delete handles DELETE /api/transactions/{id}.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "transaction.delete")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.transactions.DeleteTransaction(r.Context(), tenant.IDFromContext(r.Context()), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID reads the {id} path value as a UUID.
func parseID(r *http.Request, op string) (pgtype.UUID, error) {
	var id pgtype.UUID
	if err := id.Scan(r.PathValue("id")); err != nil {
		return id, domain.Invalid(op, "id must be a UUID")
	}
	return id, nil
}
