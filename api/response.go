package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"dreamcatcher/database"
	"dreamcatcher/generator"
)

// Success writes the {"success": true, ...} envelope every JSON endpoint uses.
func Success(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}

func Fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}

// FailWith maps the typed error kinds onto HTTP statuses. Anything unmapped is
// a 500 with a generic message so storage internals never leak.
func FailWith(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrDuplicateUsername), errors.Is(err, database.ErrDuplicateEmail):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, database.ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, database.ErrForbidden):
		Fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, database.ErrNotFound):
		Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, generator.ErrGeneratorUnavailable):
		Fail(w, http.StatusServiceUnavailable, err.Error())
	default:
		Fail(w, http.StatusInternalServerError, "internal server error")
	}
}
