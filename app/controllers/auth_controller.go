package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"frontera/app/identity"
	"frontera/app/models"
)

// AuthController exposes the identity collaborator's contract over HTTP.
type AuthController struct {
	ids *identity.Service
}

// NewAuthController creates a new AuthController
func NewAuthController(ids *identity.Service) *AuthController {
	return &AuthController{ids: ids}
}

// SignUpRequest is the JSON body of POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

type sessionResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// SignUp registers a profile and opens a session.
func (ac *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		sendError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	profile, token, err := ac.ids.SignUp(req.Email, req.Password, models.Profile{
		FullName: req.FullName,
		Username: req.Username,
	})
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, sessionResponse{Token: token, Profile: profile})
}

// SignInRequest is the JSON body of POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn opens a session for an existing profile.
func (ac *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, token, err := ac.ids.SignInWithPassword(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			sendError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		sendFailure(w, err)
		return
	}
	sendJSON(w, sessionResponse{Token: token, Profile: profile})
}

// SignOut closes the request's session.
func (ac *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	ac.ids.SignOut(r.Header.Get(AuthHeader))
	w.WriteHeader(http.StatusNoContent)
}
