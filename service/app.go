package service

import (
	"log"
	"net/http"

	"frontera/app/storage"
	"frontera/config"
	"frontera/routes"

	"github.com/dgraph-io/badger/v4"
)

// RunAppServer starts the storytelling service.
func RunAppServer(cfg config.Config) error {
	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	store := storage.NewDiskStore(cfg.StorageRoot, cfg.BaseURL)
	router := routes.SetupRoutes(db, store)

	// Serve uploaded objects from the same process.
	router.PathPrefix("/media/").Handler(
		http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.StorageRoot))))

	log.Printf("Starting storytelling service on %s", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, router)
}
