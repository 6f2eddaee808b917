package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/TobiasLindner/DevFolio/app/controllers"
	"github.com/TobiasLindner/DevFolio/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/", controllers.HandleHome)
	app.Get("/about", controllers.HandleAbout)

	// Blog
	app.Get("/blog", controllers.HandleBlogIndex)
	app.Get("/blog/:slug", controllers.HandleBlogShow)

	// Projects
	app.Get("/projects", controllers.HandleProjects)

	// Newsletter double opt-in flow. Signups are rate limited per IP.
	app.Post("/newsletter/subscribe", middleware.NewRateLimiter(5, time.Minute), controllers.HandleNewsletterSubscribe)
	app.Get("/newsletter/confirm/:token", controllers.HandleNewsletterConfirm)
	app.Get("/newsletter/unsubscribe/:token", controllers.HandleNewsletterUnsubscribe)

	// Admin auth
	app.Get("/admin/login", controllers.HandleAdminLoginPage)
	app.Post("/admin/login", middleware.NewRateLimiter(10, 5*time.Minute), controllers.HandleAdminLogin)

	// Social OAuth
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}
