package repository

import (
	"devmatch-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID with its creator
func (r *ProjectRepository) GetByID(id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Creator").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Creator").Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByCreatorID retrieves all projects created by a user, newest first
func (r *ProjectRepository) GetByCreatorID(creatorID int64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Creator").Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project. Applications and their children go with it via
// the ON DELETE CASCADE constraints.
func (r *ProjectRepository) Delete(id int64) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
