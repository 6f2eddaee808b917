package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
)

// HandleProjects renders the public project gallery
func HandleProjects(c *fiber.Ctx) error {
	projectRepo := repository.GetGlobalFactory().GetProjectRepository()

	category := c.Query("category")
	var (
		projects []models.Project
		err      error
	)
	if category != "" {
		projects, err = projectRepo.GetByCategory(category)
	} else {
		projects, err = projectRepo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch projects")
	}

	return render(c, "projects/index", fiber.Map{
		"Title":    "Projects",
		"Projects": projects,
		"Category": category,
	})
}
