package repository

import (
	"devmatch-backend/internal/database/models"

	"gorm.io/gorm"
)

// AnalysisRepository handles database operations for analysis results
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create inserts a new analysis result. The unique index on application_id
// rejects a second result for the same application; callers map that to a
// duplicate-analysis error.
func (r *AnalysisRepository) Create(result *models.AnalysisResult) error {
	return r.db.Create(result).Error
}

// GetByApplicationID retrieves the analysis result for an application
func (r *AnalysisRepository) GetByApplicationID(applicationID int64) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := r.db.First(&result, "application_id = ?", applicationID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
