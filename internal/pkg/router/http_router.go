package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/TobiasLindner/DevFolio/internal/pkg/oauth"
	"github.com/TobiasLindner/DevFolio/internal/pkg/session"
	"github.com/TobiasLindner/DevFolio/internal/pkg/statistics"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Count page views for public GET pages
	app.Use(trackPageViewMiddleware)

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

// trackPageViewMiddleware records a view for every public HTML page. Admin
// pages, API calls and static assets are not counted. The counter is a
// single Redis HINCRBY, cheap enough to run inline.
func trackPageViewMiddleware(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodGet {
		path := c.Path()
		if !strings.HasPrefix(path, "/admin") &&
			!strings.HasPrefix(path, "/api") &&
			!strings.HasPrefix(path, "/uploads") &&
			!strings.HasPrefix(path, "/assets") &&
			!strings.HasPrefix(path, "/metrics") &&
			!strings.HasPrefix(path, "/auth") {
			statistics.TrackPageView(path)
		}
	}
	return c.Next()
}
