// Package herr maps ledger errors onto huma HTTP errors.
package herr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/ledger"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ledger.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInvalidTransactionKind),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidRecurrence),
		errors.Is(err, ledger.ErrInvalidOperation),
		errors.Is(err, ledger.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// clientErrors are the only detail a 4xx response carries. The wrapped text
// may name tables or constraints.
var clientErrors = []error{
	ledger.ErrUnauthenticated,
	ledger.ErrForbidden,
	ledger.ErrNotFound,
	ledger.ErrInvalidTransactionKind,
	ledger.ErrInvalidAmount,
	ledger.ErrInvalidRecurrence,
	ledger.ErrInvalidOperation,
	ledger.ErrInvalidInput,
}

// FromService converts a service error into a huma error. Client errors carry
// the matching ledger sentinel; server errors only carry message.
func FromService(err error, message string) error {
	if err == nil {
		return nil
	}
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}

	status := Status(err)
	if status >= http.StatusInternalServerError {
		return huma.NewError(status, message)
	}
	for _, sentinel := range clientErrors {
		if errors.Is(err, sentinel) {
			return huma.NewError(status, message, sentinel)
		}
	}
	return huma.NewError(status, message)
}
