package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// Cookie lifetime: 7 days.
const authCookieMaxAge = 60 * 60 * 24 * 7

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler handles POST /api/auth/login. Credentials are a constant
// comparison against the configured pair; success sets the session cookie.
func (s *Server) loginHandler(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Solicitud inválida",
		})
	}

	if req.Username != s.config.DashboardUser || req.Password != s.config.DashboardPassword {
		log.Warn().Str("username", req.Username).Msg("Rejected login attempt")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Credenciales incorrectas",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    req.Username,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	log.Info().Str("username", req.Username).Msg("Dashboard login")

	return c.JSON(fiber.Map{"success": true})
}

// logoutHandler handles POST /api/auth/logout by expiring the cookie.
func (s *Server) logoutHandler(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}
