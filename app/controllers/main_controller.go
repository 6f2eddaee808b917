package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/app/repository"
)

// HandleHome renders the landing page with featured projects and recent posts
func HandleHome(c *fiber.Ctx) error {
	repos := repository.GetGlobalFactory()

	featured, err := repos.GetProjectRepository().GetFeatured()
	if err != nil {
		fiberlog.Errorf("Error loading featured projects: %v", err)
	}

	posts, err := repos.GetBlogRepository().GetPublished(0, 3)
	if err != nil {
		fiberlog.Errorf("Error loading recent posts: %v", err)
	}

	return render(c, "home", fiber.Map{
		"Title":            "Home",
		"FeaturedProjects": featured,
		"RecentPosts":      posts,
	})
}

// HandleAbout renders the about page
func HandleAbout(c *fiber.Ctx) error {
	return render(c, "about", fiber.Map{
		"Title": "About",
	})
}
