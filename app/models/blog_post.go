package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BlogPost represents a blog article. Content is markdown; Tags and
// Technologies style fields are comma-separated like the rest of the schema.
type BlogPost struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=3,max=200"`
	Slug      string         `gorm:"uniqueIndex;type:varchar(200)" json:"slug" validate:"required,min=3,max=200"`
	Excerpt   string         `gorm:"type:varchar(500)" json:"excerpt" validate:"max=500"`
	Author    string         `gorm:"type:varchar(100)" json:"author" validate:"required,max=100"`
	Content   string         `gorm:"type:text" json:"content" validate:"required"`
	Category  string         `gorm:"type:varchar(50);index" json:"category" validate:"max=50"`
	Tags      string         `gorm:"type:varchar(200)" json:"tags"` // comma-separated
	ImageURL  string         `gorm:"type:varchar(300)" json:"image_url" validate:"max=300"`
	ReadTime  int            `gorm:"default:0" json:"read_time"` // minutes
	Published bool           `gorm:"type:tinyint(1);default:0;index" json:"published"`
	ViewCount int            `gorm:"default:0" json:"view_count"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}

// TagList splits the comma-separated tags field
func (p *BlogPost) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	raw := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// EstimateReadTime derives the read time from the content length (~200 wpm)
func (p *BlogPost) EstimateReadTime() int {
	words := len(strings.Fields(p.Content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
