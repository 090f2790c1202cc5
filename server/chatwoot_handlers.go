package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/gps-estudio/sofia-dashboard/chatwoot"
)

const chatwootNotConfigured = "Chatwoot no configurado"

// conversationsResponse is the listing payload. The error variant carries an
// empty list plus the error string, always with HTTP 200: the dashboard
// renders a warning banner instead of failing the page.
type conversationsResponse struct {
	Conversations []chatwoot.Conversation `json:"conversations"`
	Total         int                     `json:"total,omitempty"`
	Error         string                  `json:"error,omitempty"`
}

// conversationsHandler handles GET /api/chatwoot/conversations
func (s *Server) conversationsHandler(c fiber.Ctx) error {
	status := c.Query("status", "all")

	limit := 20
	if limitParam := c.Query("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			limit = l
		}
	}

	if !s.chatwoot.Configured() {
		return c.JSON(conversationsResponse{
			Conversations: []chatwoot.Conversation{},
			Error:         chatwootNotConfigured,
		})
	}

	raw, err := s.chatwoot.ListConversations(c.Context(), status)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching Chatwoot conversations")
		return c.JSON(conversationsResponse{
			Conversations: []chatwoot.Conversation{},
			Error:         err.Error(),
		})
	}

	conversations := chatwoot.TransformAll(raw)
	if len(conversations) > limit {
		conversations = conversations[:limit]
	}

	return c.JSON(conversationsResponse{
		Conversations: conversations,
		Total:         len(raw),
	})
}

// statsHandler handles GET /api/chatwoot/stats. The full conversation set is
// fetched and aggregated per request; stats and conversations always come
// from the same fetch, never mixed across requests.
func (s *Server) statsHandler(c fiber.Ctx) error {
	if !s.chatwoot.Configured() {
		return c.JSON(chatwoot.Stats{Error: chatwootNotConfigured})
	}

	raw, err := s.chatwoot.ListConversations(c.Context(), "all")
	if err != nil {
		log.Error().Err(err).Msg("Error fetching Chatwoot stats")
		return c.JSON(chatwoot.Stats{Error: err.Error()})
	}

	return c.JSON(chatwoot.ComputeStats(raw, time.Now()))
}
