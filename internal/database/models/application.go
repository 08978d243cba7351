package models

import (
	"time"

	apperrors "devmatch-backend/internal/errors"
)

// ApplicationStatus represents the approval state of an application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsValid checks if the ApplicationStatus is valid
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a user's application to join a project. It
// exclusively owns its SkillScores and at most one AnalysisResult; both are
// removed with the application.
type Application struct {
	ID        int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64             `json:"user_id" gorm:"not null;index" validate:"required"`
	ProjectID int64             `json:"project_id" gorm:"not null;index" validate:"required"`
	Status    ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	AppliedAt time.Time         `json:"applied_at" gorm:"autoCreateTime"`

	// Relationships
	User           User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Project        Project         `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	SkillScores    []SkillScore    `json:"skill_scores,omitempty" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	AnalysisResult *AnalysisResult `json:"analysis_result,omitempty" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Application
func (Application) TableName() string {
	return "applications"
}

// ChangeStatus sets a new status. Changing to the current status is rejected.
func (a *Application) ChangeStatus(status ApplicationStatus) error {
	if status == a.Status {
		return apperrors.NewInvalidTransitionError("application", string(a.Status))
	}
	a.Status = status
	return nil
}
