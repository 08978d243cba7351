package models

import (
	"strings"
	"time"

	apperrors "devmatch-backend/internal/errors"
)

// ProjectStatus represents the recruiting lifecycle of a project
type ProjectStatus string

const (
	ProjectStatusRecruiting ProjectStatus = "RECRUITING"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusRecruiting, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project represents a team project looking for members. CurrentTeamSize is
// driven exclusively by application status transitions; Status flips to
// COMPLETED when the counter reaches TeamSize and back to RECRUITING on any
// decrease.
type Project struct {
	ID              int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string        `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description     string        `json:"description" gorm:"size:2000;not null" validate:"required,min=1,max=2000"`
	TechStack       string        `json:"tech_stack" gorm:"size:500;not null" validate:"required,min=1,max=500"`
	TeamSize        int           `json:"team_size" gorm:"not null" validate:"required,min=1"`
	CurrentTeamSize int           `json:"current_team_size" gorm:"not null;default:0"`
	Status          ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'RECRUITING'"`
	Content         string        `json:"content" gorm:"size:2000"`
	DurationWeeks   int           `json:"duration_weeks" gorm:"not null" validate:"required,min=1"`
	CreatorID       int64         `json:"creator_id" gorm:"not null;index" validate:"required"`
	CreatedAt       time.Time     `json:"created_at"`

	// Relationships
	Creator      User          `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Applications []Application `json:"applications,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TechStacks splits the stored ", "-separated tech stack into its tokens.
func (p *Project) TechStacks() []string {
	if p.TechStack == "" {
		return nil
	}
	return strings.Split(p.TechStack, ", ")
}

// ChangeStatus sets a new status. Changing to the current status is rejected.
func (p *Project) ChangeStatus(status ProjectStatus) error {
	if status == p.Status {
		return apperrors.NewInvalidTransitionError("project", string(p.Status))
	}
	p.Status = status
	return nil
}

// ChangeContent overwrites the role-assignment content. Used both by owner
// edits and by storing the generated team role assignment.
func (p *Project) ChangeContent(content string) {
	p.Content = content
}

// IncreaseCurrentTeamSize admits one approved member. Reaching the target
// size marks the project COMPLETED.
func (p *Project) IncreaseCurrentTeamSize() error {
	if p.CurrentTeamSize >= p.TeamSize {
		return &apperrors.CapacityExceededError{TeamSize: p.TeamSize}
	}
	p.CurrentTeamSize++
	if p.CurrentTeamSize == p.TeamSize {
		p.Status = ProjectStatusCompleted
	}
	return nil
}

// DecreaseCurrentTeamSize removes one approved member and reopens
// recruiting. The counter never goes below zero.
func (p *Project) DecreaseCurrentTeamSize() error {
	if p.CurrentTeamSize == 0 {
		return apperrors.ErrTeamSizeUnderflow
	}
	p.CurrentTeamSize--
	p.Status = ProjectStatusRecruiting
	return nil
}
