package testutils

import (
	"fmt"
	"sync/atomic"

	"devmatch-backend/internal/database/models"
)

// FactorySet bundles all factories for test suites
type FactorySet struct {
	User        *UserFactory
	Project     *ProjectFactory
	Application *ApplicationFactory
	Analysis    *AnalysisResultFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Project:     NewProjectFactory(),
		Application: NewApplicationFactory(),
		Analysis:    NewAnalysisResultFactory(),
	}
}

var factorySeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&factorySeq, 1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username
func (f *UserFactory) Create() *models.User {
	n := nextSeq()
	return &models.User{
		Username: fmt.Sprintf("testuser-%d", n),
		Nickname: fmt.Sprintf("Tester %d", n),
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithNickname sets a custom nickname for the user
func (f *UserFactory) WithNickname(nickname string) *models.User {
	user := f.Create()
	user.Nickname = nickname
	return user
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values. CreatorID must be set
// (or use WithCreator) before saving.
func (f *ProjectFactory) Create() *models.Project {
	n := nextSeq()
	return &models.Project{
		Title:         fmt.Sprintf("Test Project %d", n),
		Description:   "A test project for testing purposes",
		TechStack:     "React, TypeScript, Go",
		TeamSize:      3,
		Status:        models.ProjectStatusRecruiting,
		DurationWeeks: 8,
	}
}

// WithCreator sets the creator for the project
func (f *ProjectFactory) WithCreator(creatorID int64) *models.Project {
	project := f.Create()
	project.CreatorID = creatorID
	return project
}

// WithTeamSize sets a custom team size for the project
func (f *ProjectFactory) WithTeamSize(creatorID int64, teamSize int) *models.Project {
	project := f.WithCreator(creatorID)
	project.TeamSize = teamSize
	return project
}

// WithTechStack sets a custom tech stack for the project
func (f *ProjectFactory) WithTechStack(creatorID int64, techStack string) *models.Project {
	project := f.WithCreator(creatorID)
	project.TechStack = techStack
	return project
}

// ApplicationFactory provides methods to create test Application data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a test Application with one skill score
func (f *ApplicationFactory) Create(userID, projectID int64) *models.Application {
	return &models.Application{
		UserID:    userID,
		ProjectID: projectID,
		Status:    models.ApplicationStatusPending,
		SkillScores: []models.SkillScore{
			{TechName: "React", Score: 7},
		},
	}
}

// WithStatus sets a custom status for the application
func (f *ApplicationFactory) WithStatus(userID, projectID int64, status models.ApplicationStatus) *models.Application {
	application := f.Create(userID, projectID)
	application.Status = status
	return application
}

// WithSkills replaces the application's skill scores
func (f *ApplicationFactory) WithSkills(userID, projectID int64, skills map[string]int) *models.Application {
	application := f.Create(userID, projectID)
	application.SkillScores = nil
	for tech, score := range skills {
		application.SkillScores = append(application.SkillScores, models.SkillScore{
			TechName: tech,
			Score:    score,
		})
	}
	return application
}

// AnalysisResultFactory provides methods to create test AnalysisResult data
type AnalysisResultFactory struct{}

// NewAnalysisResultFactory creates a new AnalysisResultFactory
func NewAnalysisResultFactory() *AnalysisResultFactory {
	return &AnalysisResultFactory{}
}

// Create creates a test AnalysisResult for an application
func (f *AnalysisResultFactory) Create(applicationID int64) *models.AnalysisResult {
	return &models.AnalysisResult{
		ApplicationID:       applicationID,
		CompatibilityScore:  72.00,
		CompatibilityReason: "Good React skills",
	}
}
