package repository

import "devmatch-backend/internal/database/models"

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id int64) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByCreatorID(creatorID int64) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id int64) error
}

// ApplicationRepositoryInterface defines the interface for application repository operations
type ApplicationRepositoryInterface interface {
	Create(application *models.Application) error
	GetByID(id int64) (*models.Application, error)
	GetByProjectID(projectID int64) ([]models.Application, error)
	GetByUserID(userID int64) ([]models.Application, error)
	GetByProjectIDAndStatus(projectID int64, status models.ApplicationStatus) ([]models.Application, error)
	UpdateWithProject(application *models.Application, seatDelta int) error
	DeleteWithProject(application *models.Application, seatDelta int) error
}

// AnalysisRepositoryInterface defines the interface for analysis result repository operations
type AnalysisRepositoryInterface interface {
	Create(result *models.AnalysisResult) error
	GetByApplicationID(applicationID int64) (*models.AnalysisResult, error)
}
