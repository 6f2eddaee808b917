package controllers

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/cache"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// HandleAdminBlogList renders the blog post table including drafts
func HandleAdminBlogList(c *fiber.Ctx) error {
	page, offset := pageOffset(c)
	blogRepo := repository.GetGlobalFactory().GetBlogRepository()

	posts, err := blogRepo.GetAll(offset, defaultPageSize)
	if err != nil {
		fiberlog.Errorf("Error listing blog posts: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to load blog posts.", "/admin")
	}
	total, _ := blogRepo.Count()

	return render(c, "admin/blog_list", fiber.Map{
		"Title": "Blog posts",
		"Posts": posts,
		"Page":  page,
		"Total": total,
	})
}

// HandleAdminBlogForm renders the editor, empty or loaded for editing
func HandleAdminBlogForm(c *fiber.Ctx) error {
	post := &models.BlogPost{}
	if c.Params("id") != "" {
		id, err := paramUint(c, "id")
		if err != nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid post id.", "/admin/blog")
		}
		post, err = repository.GetGlobalFactory().GetBlogRepository().GetByID(id)
		if err != nil {
			return respondError(c, fiber.StatusNotFound, "Post not found.", "/admin/blog")
		}
	}

	return render(c, "admin/blog_form", fiber.Map{
		"Title": "Edit post",
		"Post":  post,
	})
}

// HandleAdminBlogCreate stores a new blog post
func HandleAdminBlogCreate(c *fiber.Ctx) error {
	post := &models.BlogPost{}
	if err := bindBlogForm(c, post); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), "/admin/blog/new")
	}

	blogRepo := repository.GetGlobalFactory().GetBlogRepository()
	if exists, _ := blogRepo.SlugExists(post.Slug); exists {
		return respondError(c, fiber.StatusConflict, "A post with this slug already exists.", "/admin/blog/new")
	}

	if err := blogRepo.Create(post); err != nil {
		fiberlog.Errorf("Error creating blog post: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to create post.", "/admin/blog/new")
	}
	_ = cache.Delete(statsCacheKey)

	return respondSuccess(c, "Post created.", "/admin/blog")
}

// HandleAdminBlogUpdate updates an existing blog post
func HandleAdminBlogUpdate(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid post id.", "/admin/blog")
	}

	blogRepo := repository.GetGlobalFactory().GetBlogRepository()
	post, err := blogRepo.GetByID(id)
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Post not found.", "/admin/blog")
	}

	oldSlug := post.Slug
	if err := bindBlogForm(c, post); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error(), "/admin/blog")
	}
	if post.Slug != oldSlug {
		if exists, _ := blogRepo.SlugExists(post.Slug); exists {
			return respondError(c, fiber.StatusConflict, "A post with this slug already exists.", "/admin/blog")
		}
	}

	if err := blogRepo.Update(post); err != nil {
		fiberlog.Errorf("Error updating blog post %d: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to update post.", "/admin/blog")
	}
	_ = cache.Delete(statsCacheKey)

	return respondSuccess(c, "Post updated.", "/admin/blog")
}

// HandleAdminBlogDelete soft-deletes a blog post
func HandleAdminBlogDelete(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid post id.", "/admin/blog")
	}

	if err := repository.GetGlobalFactory().GetBlogRepository().Delete(id); err != nil {
		fiberlog.Errorf("Error deleting blog post %d: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete post.", "/admin/blog")
	}
	_ = cache.Delete(statsCacheKey)

	return respondSuccess(c, "Post deleted.", "/admin/blog")
}

// bindBlogForm fills a post from the editor form and validates it
func bindBlogForm(c *fiber.Ctx, post *models.BlogPost) error {
	post.Title = strings.TrimSpace(c.FormValue("title"))
	post.Slug = c.FormValue("slug")
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	post.Excerpt = strings.TrimSpace(c.FormValue("excerpt"))
	post.Author = strings.TrimSpace(c.FormValue("author"))
	post.Content = c.FormValue("content")
	post.Category = strings.TrimSpace(c.FormValue("category"))
	post.Tags = strings.TrimSpace(c.FormValue("tags"))
	post.ImageURL = strings.TrimSpace(c.FormValue("image_url"))
	post.Published = c.FormValue("published") == "on"
	post.ReadTime = post.EstimateReadTime()

	if err := validator.New().Struct(post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please fill in all required fields.")
	}
	return nil
}

// Slugify turns a title into a URL-safe slug
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
