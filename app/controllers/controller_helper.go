package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/TobiasLindner/DevFolio/app/models"
)

const defaultPageSize = 10

// isHTMXRequest reports whether the request was issued by HTMX
func isHTMXRequest(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// render wraps c.Render with the shared layout and common view data
func render(c *fiber.Ctx, template string, data fiber.Map) error {
	settings := models.GetAppSettings()
	if data == nil {
		data = fiber.Map{}
	}
	data["SiteTitle"] = settings.SiteTitle
	data["SiteDescription"] = settings.SiteDescription
	data["Flash"] = flash.Get(c)
	return c.Render(template, data, "layouts/main")
}

// paramUint parses a numeric route parameter
func paramUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// pageOffset converts a ?page= query value into an offset
func pageOffset(c *fiber.Ctx) (page int, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * defaultPageSize
}

// respondError flashes an error and redirects (or sends the message for HTMX)
func respondError(c *fiber.Ctx, status int, message, redirectPath string) error {
	flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	})
	if isHTMXRequest(c) {
		return c.Status(status).SendString(message)
	}
	return c.Redirect(redirectPath)
}

// respondSuccess flashes a success message and redirects
func respondSuccess(c *fiber.Ctx, message, redirectPath string) error {
	flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": message,
	})
	return c.Redirect(redirectPath)
}
