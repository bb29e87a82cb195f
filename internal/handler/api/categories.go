package api

import (
	"net/http"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/handler"
	"github.com/northbooks/tally/internal/tax"
)

// CategoryHandler serves the CRA expense category table.
type CategoryHandler struct{}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, tax.Categories())
}

// Match handles GET /api/categories/match?q=<category>.
// Unrecognized strings resolve to the Other bucket rather than 404:
// that mirrors how the report itself categorizes.
func (h *CategoryHandler) Match(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		handler.ErrorResponse(w, r, domain.Invalid("category.match", "query parameter q is required"))
		return
	}

	handler.RespondJSON(w, http.StatusOK, tax.Categorize(q))
}
