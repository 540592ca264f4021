package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shelfmark/backend/cmd/desktop/handlers"
	"github.com/shelfmark/backend/internal/config"
	"github.com/shelfmark/backend/internal/logging"
	"github.com/shelfmark/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error("invalid configuration", err)
		os.Exit(1)
	}
	logging.Init(os.Stdout, cfg.LogLevel)

	backend, err := openBackend(cfg)
	if err != nil {
		logging.Error("storage unavailable", err)
		os.Exit(1)
	}

	s := store.New(backend, cfg.Seed)
	if err := s.Initialize(); err != nil {
		// The single unrecoverable error path: without a readable
		// collection the host cannot serve anything.
		logging.Error("cannot initialize collection", err)
		os.Exit(1)
	}
	defer s.Close()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok","service":"shelfmark-desktop"}`))
		})
		handlers.NewBookHandler(s).Routes(api)
	})
	r.Get("/ws", NewChannel(s).Handler())

	logging.Info("desktop host listening", map[string]interface{}{
		"addr": cfg.ListenAddr,
		"mode": cfg.StorageMode,
	})
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logging.Error("server stopped", err)
		os.Exit(1)
	}
}

// openBackend picks the persistence backend for the configured mode.
func openBackend(cfg *config.Config) (store.Backend, error) {
	if cfg.StorageMode == config.ModeKV {
		return store.NewKVBackend(cfg.KVPath())
	}
	return store.NewFileBackend(cfg.DocumentPath())
}
