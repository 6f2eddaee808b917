package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	gothfiber "github.com/shareed2k/goth_fiber"
	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/middleware"
	"github.com/TobiasLindner/DevFolio/internal/pkg/session"
)

// HandleAdminLoginPage renders the admin login form
func HandleAdminLoginPage(c *fiber.Ctx) error {
	if session.GetSessionValue(c, middleware.SessionKeyAdminID) != "" {
		return c.Redirect("/admin")
	}
	return render(c, "admin/login", fiber.Map{
		"Title": "Login",
	})
}

// HandleAdminLogin verifies the admin credentials and opens a session
func HandleAdminLogin(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return respondError(c, fiber.StatusBadRequest, "Email and password are required.", "/admin/login")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(email)
	if err != nil || !user.IsActive() || !user.CheckPassword(password) {
		// Same message for unknown user and wrong password
		return respondError(c, fiber.StatusUnauthorized, "Invalid credentials.", "/admin/login")
	}

	return openAdminSession(c, user.ID)
}

// HandleOAuthCallback completes the GitHub login. Only the configured
// owner account may sign in this way.
func HandleOAuthCallback(c *fiber.Ctx) error {
	gothUser, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		fiberlog.Errorf("OAuth callback failed: %v", err)
		return respondError(c, fiber.StatusUnauthorized, "GitHub login failed.", "/admin/login")
	}

	if gothUser.Email == "" {
		return respondError(c, fiber.StatusUnauthorized, "GitHub account has no public email.", "/admin/login")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmail(gothUser.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusUnauthorized, "This GitHub account is not authorized.", "/admin/login")
		}
		fiberlog.Errorf("Error loading user for OAuth login: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Login failed. Please try again.", "/admin/login")
	}
	if !user.IsActive() {
		return respondError(c, fiber.StatusUnauthorized, "This account is disabled.", "/admin/login")
	}

	return openAdminSession(c, user.ID)
}

// HandleAdminLogout drops the admin session
func HandleAdminLogout(c *fiber.Ctx) error {
	if err := session.DestroySession(c); err != nil {
		fiberlog.Warnf("Error destroying session: %v", err)
	}
	return c.Redirect("/")
}

func openAdminSession(c *fiber.Ctx, userID uint) error {
	if err := session.SetSessionValue(c, middleware.SessionKeyAdminID, strconv.FormatUint(uint64(userID), 10)); err != nil {
		fiberlog.Errorf("Error opening admin session: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Login failed. Please try again.", "/admin/login")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	if user, err := userRepo.GetByID(userID); err == nil {
		now := time.Now()
		user.LastLoginAt = &now
		if err := userRepo.Update(user); err != nil {
			fiberlog.Warnf("Error updating last login: %v", err)
		}
	}

	return c.Redirect("/admin")
}
