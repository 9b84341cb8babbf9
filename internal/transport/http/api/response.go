package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"payrolld/internal/domain/payroll"
	"payrolld/internal/domain/validation"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

// FailDomain maps the payroll error taxonomy onto HTTP statuses so callers
// can branch on cause without string matching.
func FailDomain(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, payroll.ErrInvalidEmployeeID):
		Fail(w, http.StatusBadRequest, "invalid_employee_id", err.Error(), requestID)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		Fail(w, http.StatusBadRequest, "invalid_period", err.Error(), requestID)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		Fail(w, http.StatusNotFound, "employee_not_found", err.Error(), requestID)
	case errors.Is(err, validation.ErrInvalidField):
		Fail(w, http.StatusBadRequest, "invalid_field", err.Error(), requestID)
	default:
		slog.Error("internal error", "err", err)
		Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
	}
}
