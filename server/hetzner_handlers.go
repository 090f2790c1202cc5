package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/gps-estudio/sofia-dashboard/hetzner"
)

// serversHandler handles GET /api/hetzner. Failures degrade to an empty
// server list with the error attached, always HTTP 200.
func (s *Server) serversHandler(c fiber.Ctx) error {
	if !s.hetzner.Configured() {
		return c.JSON(hetzner.CostReport{
			Servers: []hetzner.Server{},
			Error:   "Hetzner API token no configurado",
		})
	}

	report, err := s.hetzner.ListServers(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching Hetzner data")
		return c.JSON(hetzner.CostReport{
			Servers: []hetzner.Server{},
			Error:   err.Error(),
		})
	}

	return c.JSON(report)
}
