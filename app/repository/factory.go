package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetBlogRepository returns the blog repository instance
func (f *Factory) GetBlogRepository() BlogRepository {
	return f.GetRepositories().Blog
}

// GetProjectRepository returns the project repository instance
func (f *Factory) GetProjectRepository() ProjectRepository {
	return f.GetRepositories().Project
}

// GetSubscriberRepository returns the subscriber repository instance
func (f *Factory) GetSubscriberRepository() SubscriberRepository {
	return f.GetRepositories().Subscriber
}

// GetAnalyticsRepository returns the analytics repository instance
func (f *Factory) GetAnalyticsRepository() AnalyticsRepository {
	return f.GetRepositories().Analytics
}

// GetSettingRepository returns the setting repository instance
func (f *Factory) GetSettingRepository() SettingRepository {
	return f.GetRepositories().Setting
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}
