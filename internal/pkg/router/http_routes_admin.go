package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TobiasLindner/DevFolio/app/controllers"
	"github.com/TobiasLindner/DevFolio/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.RequireAdmin)
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	// Blog management
	adminGroup.Get("/blog", controllers.HandleAdminBlogList)
	adminGroup.Get("/blog/new", controllers.HandleAdminBlogForm)
	adminGroup.Post("/blog", controllers.HandleAdminBlogCreate)
	adminGroup.Get("/blog/edit/:id", controllers.HandleAdminBlogForm)
	adminGroup.Post("/blog/update/:id", controllers.HandleAdminBlogUpdate)
	adminGroup.Post("/blog/delete/:id", controllers.HandleAdminBlogDelete)

	// Project management
	adminGroup.Get("/projects", controllers.HandleAdminProjectList)
	adminGroup.Get("/projects/new", controllers.HandleAdminProjectForm)
	adminGroup.Post("/projects", controllers.HandleAdminProjectCreate)
	adminGroup.Get("/projects/edit/:id", controllers.HandleAdminProjectForm)
	adminGroup.Post("/projects/update/:id", controllers.HandleAdminProjectUpdate)
	adminGroup.Post("/projects/delete/:id", controllers.HandleAdminProjectDelete)

	// Media uploads
	adminGroup.Get("/media", controllers.HandleAdminMediaList)
	adminGroup.Get("/media/upload", controllers.HandleAdminMediaForm)
	adminGroup.Post("/media/upload", controllers.HandleAdminMediaUpload)
	adminGroup.Post("/media/delete", controllers.HandleAdminMediaDelete)

	// Settings + newsletter broadcast
	adminGroup.Get("/settings", controllers.HandleAdminSettingsForm)
	adminGroup.Post("/settings", controllers.HandleAdminSettingsUpdate)
	adminGroup.Get("/newsletter", controllers.HandleAdminNewsletterForm)
	adminGroup.Post("/newsletter/send", controllers.HandleAdminNewsletterSend)

	adminGroup.Post("/logout", controllers.HandleAdminLogout)

	// JSON endpoint for the dashboard widgets; returns 401 instead of a redirect
	app.Get("/admin/api/stats", middleware.RequireAPIAdmin, controllers.HandleAPIStats)
}
