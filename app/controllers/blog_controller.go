package controllers

import (
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/statistics"
	"github.com/TobiasLindner/DevFolio/internal/pkg/utils"
)

// HandleBlogIndex renders the public blog listing, optionally filtered by category
func HandleBlogIndex(c *fiber.Ctx) error {
	blogRepo := repository.GetGlobalFactory().GetBlogRepository()
	page, offset := pageOffset(c)

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
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch blog posts")
	}

	return render(c, "blog/index", fiber.Map{
		"Title":    "Blog",
		"Posts":    posts,
		"Category": category,
		"Page":     page,
	})
}

// HandleBlogShow renders a single blog post and counts the view
func HandleBlogShow(c *fiber.Ctx) error {
	blogRepo := repository.GetGlobalFactory().GetBlogRepository()

	post, err := blogRepo.GetBySlug(c.Params("slug"))
	if err != nil || !post.Published {
		return c.Status(fiber.StatusNotFound).SendString("Blog post not found")
	}

	statistics.TrackBlogView(post.ID)

	return render(c, "blog/show", fiber.Map{
		"Title":   post.Title,
		"Post":    post,
		"Content": template.HTML(utils.RenderContent(post.Content)),
		"Tags":    post.TagList(),
	})
}
