package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string

	DashboardUser     string
	DashboardPassword string

	ChatwootBaseURL     string
	ChatwootAccountID   string
	ChatwootAccessToken string

	HetznerAPIToken string

	LangfuseHost      string
	LangfusePublicKey string
	LangfuseSecretKey string

	PromptSource string
	PromptName   string

	BotURL string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		DashboardUser:       getEnv("DASHBOARD_USER", "admin"),
		DashboardPassword:   getEnv("DASHBOARD_PASSWORD", "gps2026"),
		ChatwootBaseURL:     getEnv("CHATWOOT_BASE_URL", ""),
		ChatwootAccountID:   getEnv("CHATWOOT_ACCOUNT_ID", ""),
		ChatwootAccessToken: getEnv("CHATWOOT_ACCESS_TOKEN", ""),
		HetznerAPIToken:     getEnv("HETZNER_API_TOKEN", ""),
		LangfuseHost:        getEnv("LANGFUSE_HOST", ""),
		LangfusePublicKey:   getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey:   getEnv("LANGFUSE_SECRET_KEY", ""),
		PromptSource:        getEnv("PROMPT_SOURCE", "local"),
		PromptName:          getEnv("PROMPT_NAME", "sofia-system-prompt"),
		BotURL:              getEnv("BOT_URL", "https://gps-bot-231066423024.us-central1.run.app"),
	}

	// Collaborator settings are optional: each feature degrades to a
	// "not configured" payload instead of aborting startup.
	if cfg.ChatwootBaseURL == "" || cfg.ChatwootAccessToken == "" || cfg.ChatwootAccountID == "" {
		log.Warn().Msg("Chatwoot settings missing, conversation features disabled")
	}
	if cfg.HetznerAPIToken == "" {
		log.Warn().Msg("HETZNER_API_TOKEN missing, server cost listing disabled")
	}
	if cfg.PromptSource == "langfuse" && (cfg.LangfuseHost == "" || cfg.LangfusePublicKey == "" || cfg.LangfuseSecretKey == "") {
		log.Warn().Msg("PROMPT_SOURCE=langfuse but Langfuse settings missing, prompt endpoints will fail")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
