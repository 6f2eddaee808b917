package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
	"github.com/TobiasLindner/DevFolio/internal/pkg/statistics"
)

const (
	statsCacheKey = "api:stats"
	statsCacheTTL = 5 * time.Minute
)

// HandleAPIPosts returns the published blog posts as JSON
func HandleAPIPosts(c *fiber.Ctx) error {
	_, offset := pageOffset(c)
	blogRepo := repository.GetGlobalFactory().GetBlogRepository()

	category := c.Query("category")
	var (
		posts []models.BlogPost
		err   error
	)
	if category != "" {
		posts, err = blogRepo.GetByCategory(category, offset, defaultPageSize)
	} else {
		posts, err = blogRepo.GetPublished(offset, defaultPageSize)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal", "message": "failed to load posts"})
	}

	total, _ := blogRepo.CountPublished()
	return c.JSON(fiber.Map{
		"posts": posts,
		"total": total,
	})
}

// HandleAPIPost returns a single published post by slug
func HandleAPIPost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "slug missing"})
	}

	post, err := repository.GetGlobalFactory().GetBlogRepository().GetBySlug(slug)
	if err != nil || !post.Published {
		// Do not leak drafts
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "post not found"})
	}

	statistics.TrackBlogView(post.ID)

	return c.JSON(post)
}

// HandleAPIProjects returns all projects as JSON
func HandleAPIProjects(c *fiber.Ctx) error {
	projectRepo := repository.GetGlobalFactory().GetProjectRepository()

	var (
		projects []models.Project
		err      error
	)
	if category := c.Query("category"); category != "" {
		projects, err = projectRepo.GetByCategory(category)
	} else {
		projects, err = projectRepo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal", "message": "failed to load projects"})
	}

	return c.JSON(fiber.Map{"projects": projects})
}

// HandleAPIStats returns public site statistics, cached for a few
// minutes since the counts only change on admin writes.
func HandleAPIStats(c *fiber.Ctx) error {
	if cached, err := cache.Get(statsCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	repos := repository.GetGlobalFactory()

	postCount, _ := repos.GetBlogRepository().CountPublished()
	projectCount, _ := repos.GetProjectRepository().Count()
	totalViews, _ := repos.GetAnalyticsRepository().TotalViews()

	payload := fiber.Map{
		"posts":       postCount,
		"projects":    projectCount,
		"total_views": totalViews,
		"generated":   time.Now().UTC().Format(time.RFC3339),
	}
	if raw, err := json.Marshal(payload); err == nil {
		if err := cache.Set(statsCacheKey, raw, statsCacheTTL); err != nil {
			fiberlog.Warnf("Could not cache stats: %v", err)
		}
	}

	return c.JSON(payload)
}
