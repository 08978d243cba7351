package repository

import (
	"devmatch-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application together with its skill scores
func (r *ApplicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

// GetByID retrieves an application with its applicant, project, skill scores
// and analysis result
func (r *ApplicationRepository) GetByID(id int64) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Preload("User").
		Preload("Project").
		Preload("SkillScores").
		Preload("AnalysisResult").
		First(&application, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetByProjectID retrieves all applications for a project
func (r *ApplicationRepository) GetByProjectID(projectID int64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("User").
		Preload("SkillScores").
		Where("project_id = ?", projectID).
		Order("applied_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// GetByUserID retrieves all applications submitted by a user
func (r *ApplicationRepository) GetByUserID(userID int64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("User").
		Preload("SkillScores").
		Where("user_id = ?", userID).
		Order("applied_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// GetByProjectIDAndStatus retrieves a project's applications in a given status
func (r *ApplicationRepository) GetByProjectIDAndStatus(projectID int64, status models.ApplicationStatus) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("User").
		Preload("SkillScores").
		Where("project_id = ? AND status = ?", projectID, status).
		Order("applied_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateWithProject persists an application status change together with its
// effect on the project's seat counter. seatDelta is +1 for a transition into
// APPROVED, -1 for a transition out of it, 0 otherwise. The project row is
// re-read under a FOR UPDATE lock inside the transaction, so two racing
// approvals serialize and the last seat can only be taken once.
func (r *ApplicationRepository) UpdateWithProject(application *models.Application, seatDelta int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("id = ?", application.ID).
			Update("status", application.Status).Error; err != nil {
			return err
		}
		return applySeatDelta(tx, application.ProjectID, seatDelta)
	})
}

// DeleteWithProject removes an application and applies the project capacity
// rollback in one transaction. Skill scores and the analysis result cascade
// at the storage layer.
func (r *ApplicationRepository) DeleteWithProject(application *models.Application, seatDelta int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := applySeatDelta(tx, application.ProjectID, seatDelta); err != nil {
			return err
		}
		return tx.Delete(&models.Application{}, "id = ?", application.ID).Error
	})
}

// applySeatDelta locks the project row and moves the seat counter through
// the domain rules, so capacity and underflow are enforced against the
// current row, not a value read before the transaction began.
func applySeatDelta(tx *gorm.DB, projectID int64, seatDelta int) error {
	if seatDelta == 0 {
		return nil
	}

	var project models.Project
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&project, "id = ?", projectID).Error; err != nil {
		return err
	}

	if seatDelta > 0 {
		if err := project.IncreaseCurrentTeamSize(); err != nil {
			return err
		}
	} else {
		if err := project.DecreaseCurrentTeamSize(); err != nil {
			return err
		}
	}

	return tx.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"current_team_size": project.CurrentTeamSize,
			"status":            project.Status,
		}).Error
}
