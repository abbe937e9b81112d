package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	httpapi "skill-reversi/internal/api/http"
	"skill-reversi/internal/api/ws"
	"skill-reversi/internal/ai"
	"skill-reversi/internal/config"
	"skill-reversi/internal/session"
	"skill-reversi/internal/store"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	mem := store.NewMemoryStore()
	hub := ws.NewHub(logger.With().Str("component", "ws").Logger())
	manager := session.NewManager(mem, cfg, hub,
		func(d session.Difficulty, w config.Weights, seed int64) session.Decider {
			return ai.New(d, w, seed)
		},
		logger.With().Str("component", "session").Logger(),
	)

	r := httpapi.SetupRouter(manager, hub)

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
