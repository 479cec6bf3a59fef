package controllers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"frontera/app/framing"
	"frontera/app/identity"
	"frontera/app/models"
	"frontera/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// PostController handles HTTP requests for stories: reading one, submitting
// a draft, adjusting cover framing, and toggling likes.
type PostController struct {
	postService *services.PostService
	likeService *services.LikeService
	ids         *identity.Service
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, likeService *services.LikeService, ids *identity.Service) *PostController {
	return &PostController{
		postService: postService,
		likeService: likeService,
		ids:         ids,
	}
}

// BlockInput is one authored block in a submission request. DataBase64
// carries the bytes of an image block.
type BlockInput struct {
	Kind       models.BlockKind `json:"kind"`
	Body       string           `json:"body"`
	DataBase64 string           `json:"data_base64,omitempty"`
}

// SubmitRequest is the JSON body of POST /api/posts.
type SubmitRequest struct {
	Title       string            `json:"title"`
	Profession  string            `json:"profession"`
	Location    string            `json:"location"`
	SocialLinks map[string]string `json:"social_links"`
	CoverBase64 string            `json:"cover_base64"`
	FocalY      *float64          `json:"focal_y,omitempty"`
	Blocks      []BlockInput      `json:"blocks"`
}

// Create handles submitting a new story. Requires a signed-in user.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(pc.ids, r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	if user == nil {
		sendError(w, "sign in first", http.StatusUnauthorized)
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post := models.NewDraft(user.ID)
	post.Content = nil
	post.Title = req.Title
	post.Description = models.ComposeDescription(req.Profession, req.Location)
	post.SocialLinks = req.SocialLinks

	blobs := make(map[string][]byte)
	for _, in := range req.Blocks {
		block := post.AppendBlock(in.Kind)
		switch in.Kind {
		case models.BlockImage:
			data, err := base64.StdEncoding.DecodeString(in.DataBase64)
			if err != nil {
				sendError(w, "invalid image data: "+err.Error(), http.StatusBadRequest)
				return
			}
			handle := uuid.NewString()
			post.SetBlockBody(block.ID, handle)
			blobs[handle] = data
		default:
			post.SetBlockBody(block.ID, in.Body)
		}
	}

	var cover []byte
	if req.CoverBase64 != "" {
		cover, err = base64.StdEncoding.DecodeString(req.CoverBase64)
		if err != nil {
			sendError(w, "invalid cover data: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	if req.FocalY != nil {
		post.CoverFocal = models.FocalPoint{X: 50, Y: clampPercent(*req.FocalY)}
	}

	created, err := pc.postService.Submit(services.SubmitInput{Post: post, Cover: cover, Blobs: blobs})
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, created)
}

// Show handles displaying a single story with its derived like state.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	viewerID := ""
	if user, err := sessionUser(pc.ids, r); err == nil && user != nil {
		viewerID = user.ID
	}

	post, liked, err := pc.postService.GetPost(vars["id"], viewerID)
	if err != nil {
		sendFailure(w, err)
		return
	}

	profession, location := post.DescriptionParts()
	sendJSON(w, map[string]interface{}{
		"post":            post,
		"profession":      profession,
		"location":        location,
		"status_label":    post.StatusLabel(),
		"object_position": framing.ObjectPosition(post.CoverFocal),
		"liked_by_user":   liked,
	})
}

// FramingRequest is the JSON body of PUT /api/posts/{id}/framing.
type FramingRequest struct {
	Y float64 `json:"y"`
}

// SetFraming persists a new cover focal point for the story.
func (pc *PostController) SetFraming(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(pc.ids, r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	if user == nil {
		sendError(w, "sign in first", http.StatusUnauthorized)
		return
	}

	var req FramingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	focal := models.FocalPoint{X: 50, Y: clampPercent(req.Y)}
	if err := pc.postService.SetCoverFraming(vars["id"], focal); err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, map[string]string{"object_position": framing.ObjectPosition(focal)})
}

// ToggleLike flips the signed-in user's like on the story.
func (pc *PostController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, err := sessionUser(pc.ids, r)
	if err != nil {
		sendFailure(w, err)
		return
	}
	if user == nil {
		sendError(w, "sign in to like", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	state, err := pc.likeService.Toggle(user.ID, vars["id"])
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, state)
}

// LikeState reads the like state for the story, scoped to the requesting
// user when signed in.
func (pc *PostController) LikeState(w http.ResponseWriter, r *http.Request) {
	userID := ""
	if user, err := sessionUser(pc.ids, r); err == nil && user != nil {
		userID = user.ID
	}

	vars := mux.Vars(r)
	state, err := pc.likeService.GetState(userID, vars["id"])
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, state)
}
