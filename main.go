package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/gps-estudio/sofia-dashboard/chatwoot"
	"github.com/gps-estudio/sofia-dashboard/config"
	"github.com/gps-estudio/sofia-dashboard/hetzner"
	"github.com/gps-estudio/sofia-dashboard/langfuse"
	"github.com/gps-estudio/sofia-dashboard/promptcfg"
	"github.com/gps-estudio/sofia-dashboard/server"
)

func main() {
	cfg := config.Load()

	var httpClient = http.Client{}

	chatwootClient := chatwoot.NewClient(
		cfg.ChatwootBaseURL,
		cfg.ChatwootAccountID,
		cfg.ChatwootAccessToken,
		httpClient,
	)

	hetznerClient := hetzner.NewClient(
		cfg.HetznerAPIToken,
		httpClient,
	)

	var promptStore promptcfg.Store
	switch cfg.PromptSource {
	case "langfuse":
		langfuseClient := langfuse.NewClient(
			cfg.LangfuseHost,
			cfg.LangfusePublicKey,
			cfg.LangfuseSecretKey,
			httpClient,
		)
		promptStore = promptcfg.NewRemoteStore(&langfuseClient, cfg.PromptName)
		log.Info().Str("prompt", cfg.PromptName).Msg("Using Langfuse prompt store")
	default:
		promptStore = promptcfg.NewMemoryStore()
		log.Info().Msg("Using in-memory prompt store")
	}

	srv := server.New(cfg, chatwootClient, hetznerClient, promptStore)
	srv.Start(cfg.Port)
}
