package middleware

import (
	"encoding/json"
	"net/http"

	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler turns the error returned by h into a JSON {message} body.
// Errors outside the customerrors taxonomy are reported as 500 without
// their text; LoggingMiddleware records the cause.
func ErrorHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, err)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := customerrors.GetStatus(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(&customerrors.Error{
		Code:    status,
		Message: customerrors.GetMessage(err),
	})
}
