package controllers

import (
	"net/http"

	"frontera/app/services"
)

// FeedController serves the composed front-page feed.
type FeedController struct {
	feedService *services.FeedService
}

// NewFeedController creates a new FeedController
func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// Index handles GET /api/feed. Zero approved posts yields two empty lists,
// never an error.
func (fc *FeedController) Index(w http.ResponseWriter, r *http.Request) {
	feed, err := fc.feedService.Compose()
	if err != nil {
		sendFailure(w, err)
		return
	}
	sendJSON(w, feed)
}
