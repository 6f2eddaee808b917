package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/TobiasLindner/DevFolio/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	v1.Get("/posts", controllers.HandleAPIPosts)
	v1.Get("/posts/:slug", controllers.HandleAPIPost)
	v1.Get("/projects", controllers.HandleAPIProjects)
	v1.Get("/stats", controllers.HandleAPIStats)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
