package models

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Setting represents a system setting
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type" validate:"required"` // string, boolean
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings represents the application settings structure
type AppSettings struct {
	SiteTitle          string `json:"site_title" validate:"required,min=1,max=255"`
	SiteDescription    string `json:"site_description" validate:"max=500"`
	ImageUploadEnabled bool   `json:"image_upload_enabled"`
	AllowedExtensions  string `json:"allowed_extensions" validate:"required"` // comma-separated
}

// Global settings instance
var (
	appSettings *AppSettings
	settingsMu  sync.RWMutex
)

// GetAppSettings returns the current application settings
func GetAppSettings() *AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if appSettings == nil {
		return defaultAppSettings()
	}
	return appSettings
}

func defaultAppSettings() *AppSettings {
	return &AppSettings{
		SiteTitle:          "DevFolio",
		SiteDescription:    "Personal portfolio and blog",
		ImageUploadEnabled: true,
		AllowedExtensions:  "png,jpg,jpeg,gif,webp,svg",
	}
}

// IsImageUploadEnabled reports whether admin media uploads are enabled
func (s *AppSettings) IsImageUploadEnabled() bool {
	return s.ImageUploadEnabled
}

// AllowedExtensionList splits the comma-separated allowed extensions
func (s *AppSettings) AllowedExtensionList() []string {
	raw := strings.Split(s.AllowedExtensions, ",")
	list := make([]string, 0, len(raw))
	for _, ext := range raw {
		if ext = strings.TrimSpace(ext); ext != "" {
			list = append(list, ext)
		}
	}
	return list
}

// Validate validates the settings struct
func (s *AppSettings) Validate() error {
	v := validator.New()
	return v.Struct(s)
}

// LoadSettings loads settings from database into memory
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	// Initialize with defaults
	appSettings = defaultAppSettings()

	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, setting := range settings {
		switch setting.Key {
		case "site_title":
			appSettings.SiteTitle = setting.Value
		case "site_description":
			appSettings.SiteDescription = setting.Value
		case "image_upload_enabled":
			appSettings.ImageUploadEnabled = setting.Value == "true"
		case "allowed_extensions":
			appSettings.AllowedExtensions = setting.Value
		}
	}

	return nil
}

// SaveSettings saves current settings to database and memory
func SaveSettings(db *gorm.DB, settings *AppSettings) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	settingsMap := map[string]string{
		"site_title":           settings.SiteTitle,
		"site_description":     settings.SiteDescription,
		"image_upload_enabled": fmt.Sprintf("%t", settings.ImageUploadEnabled),
		"allowed_extensions":   settings.AllowedExtensions,
	}

	for key, value := range settingsMap {
		var setting Setting
		result := db.Where("setting_key = ?", key).First(&setting)

		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				setting = Setting{
					Key:   key,
					Value: value,
					Type:  getSettingType(key),
				}
				if err := db.Create(&setting).Error; err != nil {
					return fmt.Errorf("failed to create setting %s: %w", key, err)
				}
			} else {
				return fmt.Errorf("failed to query setting %s: %w", key, result.Error)
			}
		} else {
			setting.Value = value
			if err := db.Save(&setting).Error; err != nil {
				return fmt.Errorf("failed to update setting %s: %w", key, err)
			}
		}
	}

	appSettings = settings
	return nil
}

func getSettingType(key string) string {
	switch key {
	case "image_upload_enabled":
		return "boolean"
	default:
		return "string"
	}
}
