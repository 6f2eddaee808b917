package repository

import (
	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/models"
)

// UserRepository defines the interface for admin-user database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// BlogRepository defines the interface for blog post database operations
type BlogRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id uint) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	GetPublished(offset, limit int) ([]models.BlogPost, error)
	GetByCategory(category string, offset, limit int) ([]models.BlogPost, error)
	GetAll(offset, limit int) ([]models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id uint) error
	Count() (int64, error)
	CountPublished() (int64, error)
	SlugExists(slug string) (bool, error)
	AddViews(id uint, delta int64) error
}

// ProjectRepository defines the interface for project database operations
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetFeatured() ([]models.Project, error)
	GetByCategory(category string) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
	Count() (int64, error)
}

// SubscriberRepository defines the interface for newsletter subscriptions
type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetByConfirmToken(token string) (*models.Subscriber, error)
	GetByUnsubscribeToken(token string) (*models.Subscriber, error)
	GetConfirmed() ([]models.Subscriber, error)
	Update(subscriber *models.Subscriber) error
	Stats() (*SubscriberStats, error)
}

// SubscriberStats summarizes the newsletter subscription states
type SubscriberStats struct {
	Confirmed    int64 `json:"confirmed"`
	Pending      int64 `json:"pending"`
	Unsubscribed int64 `json:"unsubscribed"`
}

// AnalyticsRepository defines the interface for aggregated page view rows
type AnalyticsRepository interface {
	AddCount(path, day string, delta int64) error
	GetRange(startDay, endDay string) ([]models.PageView, error)
	TotalViews() (int64, error)
	TopPaths(startDay, endDay string, limit int) ([]models.PageView, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
}

// Repositories bundles all repository instances
type Repositories struct {
	User       UserRepository
	Blog       BlogRepository
	Project    ProjectRepository
	Subscriber SubscriberRepository
	Analytics  AnalyticsRepository
	Setting    SettingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(db),
		Blog:       NewBlogRepository(db),
		Project:    NewProjectRepository(db),
		Subscriber: NewSubscriberRepository(db),
		Analytics:  NewAnalyticsRepository(db),
		Setting:    NewSettingRepository(db),
	}
}
