// Package respond maps service results and errors onto HTTP responses.
// Every handler speaks through it so status codes stay consistent.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/session"
)

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps a service error onto a status code: validation failures are
// 400, missing entities 404, failed persistence 503, everything else 500.
func Error(w http.ResponseWriter, err error) {
	switch {
	case ledger.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, ledger.ErrGoalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case Pending(err):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Pending reports whether the error is a persistence failure, meaning the
// operation was accepted in memory but not yet durably written.
func Pending(err error) bool {
	var pe *session.PersistenceError
	return errors.As(err, &pe)
}
