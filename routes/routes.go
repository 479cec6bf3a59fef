package routes

import (
	"frontera/app/controllers"
	"frontera/app/identity"
	"frontera/app/repositories"
	"frontera/app/services"
	"frontera/app/storage"
	"frontera/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the repositories, services, and controllers over the
// given DB and object store, and returns the router.
func SetupRoutes(db *badger.DB, store storage.Store) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postRepo := repositories.NewBadgerPostRepository(db)
	likeRepo := repositories.NewBadgerLikeRepository(db)
	profileRepo := repositories.NewBadgerProfileRepository(db)

	ids := identity.NewService(profileRepo)
	postService := services.NewPostService(postRepo, likeRepo, store)
	likeService := services.NewLikeService(likeRepo, postRepo)
	feedService := services.NewFeedService(postRepo, likeRepo)
	moderationService := services.NewModerationService(postRepo, likeRepo, profileRepo)

	postController := controllers.NewPostController(postService, likeService, ids)
	feedController := controllers.NewFeedController(feedService)
	adminController := controllers.NewAdminController(moderationService, ids)
	authController := controllers.NewAuthController(ids)

	api := router.PathPrefix("/api").Subrouter()

	// Feed and stories
	api.HandleFunc("/feed", feedController.Index).Methods("GET")
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}/framing", postController.SetFraming).Methods("PUT")
	posts.HandleFunc("/{id}/like", postController.ToggleLike).Methods("POST")
	posts.HandleFunc("/{id}/likes", postController.LikeState).Methods("GET")

	// Moderation
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/posts", adminController.Index).Methods("GET")
	admin.HandleFunc("/posts/{id}/status", adminController.SetStatus).Methods("PUT")
	admin.HandleFunc("/posts/{id}/featured", adminController.SetFeatured).Methods("PUT")
	admin.HandleFunc("/posts/{id}", adminController.Delete).Methods("DELETE")

	// Sessions
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", authController.SignUp).Methods("POST")
	auth.HandleFunc("/signin", authController.SignIn).Methods("POST")
	auth.HandleFunc("/signout", authController.SignOut).Methods("POST")

	return router
}
