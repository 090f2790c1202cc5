package server

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

// Name of the session cookie set by login. Its value is the username, trusted
// as-is: the gate is a shared-secret on/off switch, not an identity system.
const authCookie = "auth"

// Paths reachable without the session cookie.
var publicPaths = []string{"/login", "/api/auth/login"}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	// Add recovery middleware
	s.app.Use(recover.New())

	// Add logger middleware
	s.app.Use(logger.New())

	// Tag every request with an id for log correlation
	s.app.Use(requestid.New())

	s.app.Use(s.sessionGate)
}

// sessionGate redirects any request lacking a non-empty auth cookie to the
// login screen. Public paths and static assets (any path with a dot) pass
// through. The cookie value itself is never verified.
func (s *Server) sessionGate(c fiber.Ctx) error {
	path := c.Path()

	for _, public := range publicPaths {
		if strings.HasPrefix(path, public) {
			return c.Next()
		}
	}

	if strings.Contains(path, ".") {
		return c.Next()
	}

	if c.Cookies(authCookie) == "" {
		return c.Redirect().To("/login")
	}

	return c.Next()
}
