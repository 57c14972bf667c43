package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookpress/bookpress/internal/kdp"
)

// errInvalidRequestBody is a shared error message for invalid JSON request bodies.
const errInvalidRequestBody = "invalid request body"

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondCalcError maps calculator errors to HTTP statuses. Out-of-range
// and unknown-enum inputs are client errors; everything else is a 500.
func respondCalcError(w http.ResponseWriter, err error) {
	var rangeErr *kdp.RangeError
	var enumErr *kdp.UnknownEnumError
	if errors.As(err, &rangeErr) || errors.As(err, &enumErr) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
