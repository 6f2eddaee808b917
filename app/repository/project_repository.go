package repository

import (
	"gorm.io/gorm"

	"github.com/TobiasLindner/DevFolio/app/models"
)

// projectRepository implements the ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new project in the database
func (r *projectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by its ID
func (r *projectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects, featured first
func (r *projectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("featured DESC, created_at DESC").Find(&projects).Error
	return projects, err
}

// GetFeatured retrieves featured projects only
func (r *projectRepository) GetFeatured() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("featured = ?", true).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// GetByCategory retrieves projects in a category
func (r *projectRepository) GetByCategory(category string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("category = ?", category).Order("featured DESC, created_at DESC").Find(&projects).Error
	return projects, err
}

// Update updates an existing project
func (r *projectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete soft-deletes a project by ID
func (r *projectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// Count returns the total number of projects
func (r *projectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
