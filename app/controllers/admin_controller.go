package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/app/repository"
	"github.com/TobiasLindner/DevFolio/internal/pkg/env"
	"github.com/TobiasLindner/DevFolio/internal/pkg/jobqueue"
)

// HandleAdminDashboard renders the dashboard with content and traffic stats
func HandleAdminDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalFactory()

	postCount, _ := repos.GetBlogRepository().Count()
	projectCount, _ := repos.GetProjectRepository().Count()

	subscriberStats, err := repos.GetSubscriberRepository().Stats()
	if err != nil {
		fiberlog.Errorf("Error loading subscriber stats: %v", err)
		subscriberStats = &repository.SubscriberStats{}
	}

	totalViews, _ := repos.GetAnalyticsRepository().TotalViews()
	weekStart := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")
	topPaths, _ := repos.GetAnalyticsRepository().TopPaths(weekStart, today, 10)

	return render(c, "admin/dashboard", fiber.Map{
		"Title":           "Dashboard",
		"PostCount":       postCount,
		"ProjectCount":    projectCount,
		"SubscriberStats": subscriberStats,
		"TotalViews":      totalViews,
		"TopPaths":        topPaths,
	})
}

// HandleAdminSettingsForm renders the settings form
func HandleAdminSettingsForm(c *fiber.Ctx) error {
	return render(c, "admin/settings", fiber.Map{
		"Title":    "Settings",
		"Settings": models.GetAppSettings(),
	})
}

// HandleAdminSettingsUpdate persists the settings form
func HandleAdminSettingsUpdate(c *fiber.Ctx) error {
	settings := &models.AppSettings{
		SiteTitle:          c.FormValue("site_title"),
		SiteDescription:    c.FormValue("site_description"),
		ImageUploadEnabled: c.FormValue("image_upload_enabled") == "on",
		AllowedExtensions:  c.FormValue("allowed_extensions"),
	}

	if err := repository.GetGlobalFactory().GetSettingRepository().Save(settings); err != nil {
		fiberlog.Errorf("Error saving settings: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Failed to save settings.", "/admin/settings")
	}

	return respondSuccess(c, "Settings saved.", "/admin/settings")
}

// HandleAdminNewsletterForm renders the broadcast form with subscriber stats
func HandleAdminNewsletterForm(c *fiber.Ctx) error {
	stats, err := repository.GetGlobalFactory().GetSubscriberRepository().Stats()
	if err != nil {
		fiberlog.Errorf("Error loading subscriber stats: %v", err)
		stats = &repository.SubscriberStats{}
	}

	return render(c, "admin/newsletter", fiber.Map{
		"Title": "Newsletter",
		"Stats": stats,
	})
}

// HandleAdminNewsletterSend queues a broadcast to every confirmed subscriber
func HandleAdminNewsletterSend(c *fiber.Ctx) error {
	subject := c.FormValue("subject")
	body := c.FormValue("body")
	if subject == "" || body == "" {
		return respondError(c, fiber.StatusBadRequest, "Subject and body are required.", "/admin/newsletter")
	}

	subscribers, err := repository.GetGlobalFactory().GetSubscriberRepository().GetConfirmed()
	if err != nil {
		fiberlog.Errorf("Error loading subscribers: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to load subscribers.", "/admin/newsletter")
	}

	base := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:"+env.GetEnv("APP_PORT", "4000"))
	queued := 0
	for _, subscriber := range subscribers {
		unsubscribeURL := fmt.Sprintf("%s/newsletter/unsubscribe/%s", base, subscriber.UnsubscribeToken)
		personalBody := fmt.Sprintf(
			"%s<hr><p><a href=%q>Unsubscribe</a></p>",
			body, unsubscribeURL,
		)
		if err := jobqueue.EnqueueEmail(subscriber.Email, subject, personalBody); err != nil {
			fiberlog.Errorf("Error enqueueing newsletter for %s: %v", subscriber.Email, err)
			continue
		}
		queued++
	}

	return respondSuccess(c, fmt.Sprintf("Newsletter queued for %d subscribers.", queued), "/admin/newsletter")
}
