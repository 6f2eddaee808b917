package repository

import (
	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/models"
)

// settingRepository implements the SettingRepository interface
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get loads the application settings from the database
func (r *settingRepository) Get() (*models.AppSettings, error) {
	if err := models.LoadSettings(r.db); err != nil {
		return nil, err
	}
	return models.GetAppSettings(), nil
}

// Save persists the application settings
func (r *settingRepository) Save(settings *models.AppSettings) error {
	return models.SaveSettings(r.db, settings)
}
