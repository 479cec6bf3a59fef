package controllers

import (
	"encoding/json"
	"net/http"

	"frontera/app/identity"
	"frontera/app/models"
	"frontera/app/services"

	"github.com/gorilla/mux"
)

// AdminController handles the moderation surface. Every handler is gated on
// the session profile's IsAdmin flag; the core treats that flag as an
// opaque authorization predicate.
type AdminController struct {
	moderation *services.ModerationService
	ids        *identity.Service
}

// NewAdminController creates a new AdminController
func NewAdminController(moderation *services.ModerationService, ids *identity.Service) *AdminController {
	return &AdminController{moderation: moderation, ids: ids}
}

// requireAdmin resolves the session and refuses non-admins. Returns false
// when the response has already been written.
func (ac *AdminController) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	user, err := sessionUser(ac.ids, r)
	if err != nil {
		sendFailure(w, err)
		return false
	}
	if user == nil {
		sendError(w, "sign in first", http.StatusUnauthorized)
		return false
	}
	if !user.IsAdmin {
		sendError(w, "admin only", http.StatusForbidden)
		return false
	}
	return true
}

// Index lists every post newest-first with its author, regardless of
// status.
func (ac *AdminController) Index(w http.ResponseWriter, r *http.Request) {
	if !ac.requireAdmin(w, r) {
		return
	}
	rows, err := ac.moderation.ListAll()
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, map[string]interface{}{"posts": rows})
}

// StatusRequest is the JSON body of PUT /api/admin/posts/{id}/status.
type StatusRequest struct {
	Status models.Status `json:"status"`
}

// SetStatus moves a post between pending/approved/rejected.
func (ac *AdminController) SetStatus(w http.ResponseWriter, r *http.Request) {
	if !ac.requireAdmin(w, r) {
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	if err := ac.moderation.SetStatus(vars["id"], req.Status); err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, map[string]string{"id": vars["id"], "status": string(req.Status)})
}

// FeaturedRequest is the JSON body of PUT /api/admin/posts/{id}/featured.
type FeaturedRequest struct {
	Featured bool `json:"featured"`
}

// SetFeatured toggles the featured flag on a post.
func (ac *AdminController) SetFeatured(w http.ResponseWriter, r *http.Request) {
	if !ac.requireAdmin(w, r) {
		return
	}

	var req FeaturedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	if err := ac.moderation.SetFeatured(vars["id"], req.Featured); err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, map[string]interface{}{"id": vars["id"], "featured": req.Featured})
}

// Delete permanently removes a post and its like rows.
func (ac *AdminController) Delete(w http.ResponseWriter, r *http.Request) {
	if !ac.requireAdmin(w, r) {
		return
	}

	vars := mux.Vars(r)
	if err := ac.moderation.Delete(vars["id"]); err != nil {
		sendFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
