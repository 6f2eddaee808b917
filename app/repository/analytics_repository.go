package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TobiasLindner/DevFolio/app/models"
)

// analyticsRepository implements the AnalyticsRepository interface
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// AddCount applies a batched view count increment for a path/day bucket,
// creating the row on first sight.
func (r *analyticsRepository) AddCount(path, day string, delta int64) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "path"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + ?", delta)}),
	}).Create(&models.PageView{Path: path, Day: day, Count: delta}).Error
}

// GetRange retrieves page view rows between two days (inclusive)
func (r *analyticsRepository) GetRange(startDay, endDay string) ([]models.PageView, error) {
	var views []models.PageView
	err := r.db.Where("day >= ? AND day <= ?", startDay, endDay).
		Order("day ASC, count DESC").Find(&views).Error
	return views, err
}

// TotalViews returns the all-time view count
func (r *analyticsRepository) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.PageView{}).
		Select("COALESCE(SUM(count), 0)").Row().Scan(&total)
	return total, err
}

// TopPaths returns the most viewed paths in a day range
func (r *analyticsRepository) TopPaths(startDay, endDay string, limit int) ([]models.PageView, error) {
	var views []models.PageView
	err := r.db.Model(&models.PageView{}).
		Select("path, SUM(count) as count").
		Where("day >= ? AND day <= ?", startDay, endDay).
		Group("path").Order("count DESC").Limit(limit).Find(&views).Error
	return views, err
}
