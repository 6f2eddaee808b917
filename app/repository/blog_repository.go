package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/models"
)

// blogRepository implements the BlogRepository interface
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository instance
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create creates a new blog post in the database
func (r *blogRepository) Create(post *models.BlogPost) error {
	if post.ReadTime == 0 {
		post.ReadTime = post.EstimateReadTime()
	}
	return r.db.Create(post).Error
}

// GetByID retrieves a blog post by its ID
func (r *blogRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a blog post by its slug
func (r *blogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPublished retrieves published blog posts with pagination
func (r *blogRepository) GetPublished(offset, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("published = ?", true).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// GetByCategory retrieves published blog posts in a category
func (r *blogRepository) GetByCategory(category string, offset, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("published = ? AND category = ?", true, category).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// GetAll retrieves all blog posts with pagination (admin listing)
func (r *blogRepository) GetAll(offset, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// Update updates an existing blog post
func (r *blogRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete soft-deletes a blog post by ID
func (r *blogRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

// Count returns the total number of blog posts
func (r *blogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Count(&count).Error
	return count, err
}

// CountPublished returns the number of published blog posts
func (r *blogRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("published = ?", true).Count(&count).Error
	return count, err
}

// SlugExists checks whether a slug is already taken
func (r *blogRepository) SlugExists(slug string) (bool, error) {
	var post models.BlogPost
	err := r.db.Select("id").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AddViews applies a batched view count increment
func (r *blogRepository) AddViews(id uint, delta int64) error {
	return r.db.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}
