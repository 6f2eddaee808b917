package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TobiasLindner/DevFolio/internal/pkg/session"
)

// SessionKeyAdminID is the session key holding the logged-in admin user ID.
const SessionKeyAdminID = "admin_user_id"

// RequireAdmin ensures a logged-in admin session; redirects to /admin/login otherwise.
func RequireAdmin(c *fiber.Ctx) error {
	if session.GetSessionValue(c, SessionKeyAdminID) == "" {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPIAdmin ensures a logged-in admin for API routes and returns JSON 401 instead of redirect.
func RequireAPIAdmin(c *fiber.Ctx) error {
	if session.GetSessionValue(c, SessionKeyAdminID) == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}
