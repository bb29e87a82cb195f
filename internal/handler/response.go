// Package handler provides shared response helpers for HTTP handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/northbooks/tally/internal/domain"
	"github.com/northbooks/tally/internal/middleware"
)

// RespondJSON writes data as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorCodeToHTTPStatus maps a domain error code to an HTTP status.
// Unknown codes map to 500.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse writes err as a structured JSON error with the mapped
// status. Internal errors are logged with full detail but surface only a
// generic message.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, "op", op)
	}
	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request rejected", attrs...)
	}

	RespondJSON(w, status, errorBody{
		Error: errorDetail{
			Code:    code,
			Message: domain.ErrorMessage(err),
		},
	})
}

// InternalErrorResponse wraps a raw error as EINTERNAL and responds.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	ErrorResponse(w, r, domain.WrapError(err, domain.EINTERNAL, "", "internal error"))
}
