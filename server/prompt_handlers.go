package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/gps-estudio/sofia-dashboard/promptcfg"
)

// promptReadHandler handles GET /api/prompt. The model field is absent when
// the Langfuse backend is active; the screens tolerate that.
func (s *Server) promptReadHandler(c fiber.Ctx) error {
	cfg, err := s.promptStore.Read(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error reading prompt configuration")
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(cfg)
}

// promptUpdateHandler handles PUT /api/prompt.
func (s *Server) promptUpdateHandler(c fiber.Ctx) error {
	var req promptcfg.UpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Solicitud inválida",
		})
	}

	result, err := s.promptStore.Update(c.Context(), req)
	if err != nil {
		var validationErr *promptcfg.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": validationErr.Reason,
			})
		}

		log.Error().Err(err).Msg("Error updating prompt configuration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error guardando configuración",
		})
	}

	return c.JSON(result)
}
