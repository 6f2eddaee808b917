package router

import (
	"github.com/gofiber/fiber/v2"
)

// Router installs a group of routes on the application
type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// Install HttpRouter first to initialize the session store, oauth
	// providers and the page view tracking. API routes come second.
	setup(app, NewHttpRouter(), NewApiRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
