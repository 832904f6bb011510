package main

import (
	"net/http"

	"passliss/internal/config"
	"passliss/internal/logger"
	"passliss/internal/syncserver"
)

func main() {
	cfg := config.NewConfig()

	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	store := syncserver.NewMemStore()
	router := syncserver.NewRouter(store, cfg.APIKey, log)

	log.Infow("Starting sync server",
		"addr", cfg.Addr,
		"auth", cfg.APIKey != "",
	)

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalw("Server failed", "error", err)
	}
}
