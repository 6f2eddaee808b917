package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Project represents a portfolio project entry
type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(100)" json:"title" validate:"required,min=3,max=100"`
	Description  string         `gorm:"type:varchar(500)" json:"description" validate:"required,max=500"`
	Technologies string         `gorm:"type:varchar(200)" json:"technologies" validate:"required,max=200"` // comma-separated
	Category     string         `gorm:"type:varchar(50);index" json:"category" validate:"required,max=50"`
	GithubURL    string         `gorm:"type:varchar(200)" json:"github_url" validate:"omitempty,url,max=200"`
	DemoURL      string         `gorm:"type:varchar(200)" json:"demo_url" validate:"omitempty,url,max=200"`
	ImageURL     string         `gorm:"type:varchar(300)" json:"image_url" validate:"max=300"`
	Featured     bool           `gorm:"type:tinyint(1);default:0;index" json:"featured"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Project model
func (Project) TableName() string {
	return "projects"
}

// TechnologyList splits the comma-separated technologies field
func (p *Project) TechnologyList() []string {
	if p.Technologies == "" {
		return nil
	}
	raw := strings.Split(p.Technologies, ",")
	list := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			list = append(list, t)
		}
	}
	return list
}
