package controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
)

// HandleAdminProjectList renders the project table
func HandleAdminProjectList(c *fiber.Ctx) error {
	projects, err := repository.GetGlobalFactory().GetProjectRepository().GetAll()
	if err != nil {
		fiberlog.Errorf("Error listing projects: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to load projects.", "/admin")
	}

	return render(c, "admin/project_list", fiber.Map{
		"Title":    "Projects",
		"Projects": projects,
	})
}

// HandleAdminProjectForm renders the editor, empty or loaded for editing
func HandleAdminProjectForm(c *fiber.Ctx) error {
	project := &models.Project{}
	if c.Params("id") != "" {
		id, err := paramUint(c, "id")
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid project id.", "/admin/projects")
		}
		project, err = repository.GetGlobalFactory().GetProjectRepository().GetByID(id)
		if err != nil {
			return respondError(c, fiber.StatusNotFound, "Project not found.", "/admin/projects")
		}
	}

	return render(c, "admin/project_form", fiber.Map{
		"Title":   "Edit project",
		"Project": project,
	})
}

// HandleAdminProjectCreate stores a new project
func HandleAdminProjectCreate(c *fiber.Ctx) error {
	project := &models.Project{}
	if err := bindProjectForm(c, project); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), "/admin/projects/new")
	}

	if err := repository.GetGlobalFactory().GetProjectRepository().Create(project); err != nil {
		fiberlog.Errorf("Error creating project: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to create project.", "/admin/projects/new")
	}
	_ = cache.Delete(statsCacheKey)

	return respondSuccess(c, "Project created.", "/admin/projects")
}

// HandleAdminProjectUpdate updates an existing project
func HandleAdminProjectUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid project id.", "/admin/projects")
	}

	projectRepo := repository.GetGlobalFactory().GetProjectRepository()
	project, err := projectRepo.GetByID(id)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Project not found.", "/admin/projects")
	}

	if err := bindProjectForm(c, project); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), "/admin/projects")
	}

	if err := projectRepo.Update(project); err != nil {
		fiberlog.Errorf("Error updating project %d: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to update project.", "/admin/projects")
	}

	return respondSuccess(c, "Project updated.", "/admin/projects")
}

// HandleAdminProjectDelete soft-deletes a project
func HandleAdminProjectDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid project id.", "/admin/projects")
	}

	if err := repository.GetGlobalFactory().GetProjectRepository().Delete(id); err != nil {
		fiberlog.Errorf("Error deleting project %d: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete project.", "/admin/projects")
	}
	_ = cache.Delete(statsCacheKey)

	return respondSuccess(c, "Project deleted.", "/admin/projects")
}

// bindProjectForm fills a project from the editor form and validates it
func bindProjectForm(c *fiber.Ctx, project *models.Project) error {
	project.Title = strings.TrimSpace(c.FormValue("title"))
	project.Description = strings.TrimSpace(c.FormValue("description"))
	project.Technologies = strings.TrimSpace(c.FormValue("technologies"))
	project.Category = strings.TrimSpace(c.FormValue("category"))
	project.GithubURL = strings.TrimSpace(c.FormValue("github_url"))
	project.DemoURL = strings.TrimSpace(c.FormValue("demo_url"))
	project.ImageURL = strings.TrimSpace(c.FormValue("image_url"))
	project.Featured = c.FormValue("featured") == "on"

	if err := validator.New().Struct(project); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please fill in all required fields.")
	}
	return nil
}
