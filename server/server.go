// Package server exposes the dashboard's JSON API behind the session gate.
package server

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/rs/zerolog/log"

	"github.com/gps-estudio/sofia-dashboard/chatwoot"
	"github.com/gps-estudio/sofia-dashboard/config"
	"github.com/gps-estudio/sofia-dashboard/hetzner"
	"github.com/gps-estudio/sofia-dashboard/promptcfg"
)

type Server struct {
	app         *fiber.App
	config      *config.Config
	chatwoot    chatwoot.Client
	hetzner     hetzner.Client
	promptStore promptcfg.Store
	httpClient  *http.Client
}

func New(cfg *config.Config, chatwootClient chatwoot.Client, hetznerClient hetzner.Client, promptStore promptcfg.Store) *Server {
	app := fiber.New()

	server := &Server{
		app:         app,
		config:      cfg,
		chatwoot:    chatwootClient,
		hetzner:     hetznerClient,
		promptStore: promptStore,
		httpClient:  &http.Client{},
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
	}))

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting dashboard server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
