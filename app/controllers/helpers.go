package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"frontera/app/apperrors"
	"frontera/app/identity"
	"frontera/app/models"
)

// AuthHeader carries the session token on authenticated requests.
const AuthHeader = "X-Auth-Token"

// Helper methods for consistent response handling

func sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sendFailure maps the error taxonomy onto HTTP statuses. Nothing is
// swallowed: unexpected failures surface as a generic 500.
func sendFailure(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		sendError(w, "not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrConflict):
		sendError(w, "conflict", http.StatusConflict)
	default:
		sendError(w, "request failed: "+err.Error(), http.StatusInternalServerError)
	}
}

// sessionUser resolves the request's token to a profile, or nil for
// anonymous requests.
func sessionUser(ids *identity.Service, r *http.Request) (*models.Profile, error) {
	token := r.Header.Get(AuthHeader)
	if token == "" {
		return nil, nil
	}
	return ids.CurrentUser(token)
}
