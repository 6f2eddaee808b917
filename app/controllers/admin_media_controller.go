package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/TobiasLindner/DevFolio/app/models"
	"github.com/TobiasLindner/DevFolio/internal/pkg/jobqueue"
	"github.com/TobiasLindner/DevFolio/internal/pkg/storage"
	"github.com/TobiasLindner/DevFolio/internal/pkg/upload"
)

// HandleAdminMediaForm renders the image upload form
func HandleAdminMediaForm(c *fiber.Ctx) error {
	return render(c, "admin/media_upload", fiber.Map{
		"Title": "Upload image",
		"Popup": c.Query("popup") == "true",
	})
}

// HandleAdminMediaUpload validates an uploaded image and stores it. The
// validation gate checks the extension, sniffs the payload's real format
// and sanitizes SVG structure before anything touches the disk.
func HandleAdminMediaUpload(c *fiber.Ctx) error {
	settings := models.GetAppSettings()
	if !settings.IsImageUploadEnabled() {
		return respondUploadResult(c, fiber.StatusForbidden, "Image uploads are currently disabled.", "")
	}

	file, err := c.FormFile("image")
	if err != nil {
		file, err = c.FormFile("file")
	}
	if err != nil {
		return respondUploadResult(c, fiber.StatusBadRequest, "No file selected.", "")
	}

	if err := upload.ValidateFileHeader(file, settings.AllowedExtensionList()); err != nil {
		return respondUploadResult(c, fiber.StatusBadRequest, err.Error(), "")
	}

	src, err := file.Open()
	if err != nil {
		fiberlog.Errorf("Error opening upload %s: %v", file.Filename, err)
		return respondUploadResult(c, fiber.StatusInternalServerError, "Image upload failed while reading the file.", "")
	}
	defer src.Close()

	result, err := storage.NewMediaStorage().SaveFile(src, file.Filename)
	if err != nil {
		fiberlog.Errorf("Error saving upload %s: %v", file.Filename, err)
		return respondUploadResult(c, fiber.StatusInternalServerError, "Image upload failed while writing to disk.", "")
	}

	if err := jobqueue.EnqueueMediaBackup(result.RelativePath, result.AbsolutePath); err != nil {
		fiberlog.Warnf("Error enqueueing backup for %s: %v", result.RelativePath, err)
	}

	return respondUploadResult(c, fiber.StatusOK, "", result.URL)
}

// HandleAdminMediaList renders the stored media gallery
func HandleAdminMediaList(c *fiber.Ctx) error {
	files, err := storage.NewMediaStorage().ListFiles()
	if err != nil {
		fiberlog.Errorf("Error listing media files: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to list media files.", "/admin")
	}

	return render(c, "admin/media_list", fiber.Map{
		"Title": "Media",
		"Files": files,
	})
}

// HandleAdminMediaDelete removes a stored media file and its backup copy
func HandleAdminMediaDelete(c *fiber.Ctx) error {
	mediaPath := c.FormValue("path")
	if mediaPath == "" {
		return respondError(c, fiber.StatusBadRequest, "No file given.", "/admin/media")
	}

	if err := storage.NewMediaStorage().DeleteFile(mediaPath); err != nil {
		fiberlog.Errorf("Error deleting media file %s: %v", mediaPath, err)
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete file.", "/admin/media")
	}

	if err := jobqueue.EnqueueMediaBackupDelete(mediaPath); err != nil {
		fiberlog.Warnf("Error enqueueing backup delete for %s: %v", mediaPath, err)
	}

	return respondSuccess(c, "File deleted.", "/admin/media")
}

// respondUploadResult renders the upload form again with either an error or
// the uploaded file's URL, mirroring the popup flow of the admin editor.
func respondUploadResult(c *fiber.Ctx, status int, errorMessage, uploadedURL string) error {
	popup := c.Query("popup") == "true" || c.FormValue("popup") == "true"

	if isHTMXRequest(c) {
		if errorMessage != "" {
			return c.Status(status).SendString(errorMessage)
		}
		return c.Status(status).SendString(uploadedURL)
	}

	return c.Status(status).Render("admin/media_upload", fiber.Map{
		"Title":        "Upload image",
		"Popup":        popup,
		"Error":        errorMessage,
		"UploadedPath": uploadedURL,
	}, "layouts/main")
}
