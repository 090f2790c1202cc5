package server

import (
	_ "embed"

	"github.com/gofiber/fiber/v3"
)

//go:embed login.html
var loginPage []byte

func (s *Server) setupRoutes() {
	s.app.Get("/login", func(c fiber.Ctx) error {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.Send(loginPage)
	})

	s.app.Post("/api/auth/login", s.loginHandler)
	s.app.Post("/api/auth/logout", s.logoutHandler)

	s.app.Get("/api/chatwoot/conversations", s.conversationsHandler)
	s.app.Get("/api/chatwoot/stats", s.statsHandler)

	s.app.Get("/api/hetzner", s.serversHandler)

	s.app.Get("/api/prompt", s.promptReadHandler)
	s.app.Put("/api/prompt", s.promptUpdateHandler)
	s.app.Post("/api/reload-prompt", s.reloadPromptHandler)
}
