package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// reloadPromptHandler handles POST /api/reload-prompt: after a prompt change
// the bot must be told to re-read its configuration, so this proxies to the
// bot's reload endpoint and forwards its answer.
func (s *Server) reloadPromptHandler(c fiber.Ctx) error {
	endpoint := s.config.BotURL + "/api/v1/reload-prompt"

	req, err := http.NewRequestWithContext(c.Context(), http.MethodPost, endpoint, strings.NewReader("{}"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error conectando con el bot",
		})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to bot")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error conectando con el bot",
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error conectando con el bot",
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Bot rejected prompt reload")
		return c.Status(resp.StatusCode).JSON(fiber.Map{
			"error":   "Error recargando prompt en el bot",
			"details": string(body),
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Send(body)
}
