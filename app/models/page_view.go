package models

import (
	"time"
)

// PageView holds aggregated page view counts per path and day. Raw hits are
// counted in Redis and drained into these rows in batches; no per-visitor
// data is stored.
type PageView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Path      string    `gorm:"type:varchar(300);uniqueIndex:idx_path_day" json:"path"`
	Day       string    `gorm:"type:varchar(10);uniqueIndex:idx_path_day;index" json:"day"` // YYYY-MM-DD
	Count     int64     `gorm:"default:0" json:"count"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PageView model
func (PageView) TableName() string {
	return "page_views"
}
