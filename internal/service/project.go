package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// techStackPattern accepts ", "-separated tokens of word characters, spaces
// and the tech-name punctuation that shows up in stack names (C++, C#, .NET,
// Objective-C).
var techStackPattern = regexp.MustCompile(`^([\w .+#-]+)(, [\w .+#-]+)*$`)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=200"`
	Description   string `json:"description" validate:"required,min=1,max=2000"`
	TechStack     string `json:"tech_stack" validate:"required,min=1,max=500"`
	TeamSize      int    `json:"team_size" validate:"required,min=1"`
	DurationWeeks int    `json:"duration_weeks" validate:"required,min=1"`
}

// UpdateProjectStatusRequest represents the request to change a project's status
type UpdateProjectStatusRequest struct {
	Status models.ProjectStatus `json:"status" validate:"required"`
}

// UpdateProjectContentRequest represents the request to change a project's
// role-assignment content
type UpdateProjectContentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID              int64                `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	TechStacks      []string             `json:"tech_stacks"`
	TeamSize        int                  `json:"team_size"`
	CurrentTeamSize int                  `json:"current_team_size"`
	Creator         string               `json:"creator"`
	Status          models.ProjectStatus `json:"status"`
	Content         string               `json:"content"`
	DurationWeeks   int                  `json:"duration_weeks"`
	CreatedAt       time.Time            `json:"created_at"`
}

// Create creates a new project owned by creatorID
func (s *ProjectService) Create(creatorID int64, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if !techStackPattern.MatchString(req.TechStack) {
		return nil, apperrors.NewValidationError("tech_stack", apperrors.ErrTechStackFormat.Error())
	}

	creator, err := s.userRepo.GetByID(creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify creator: %w", err)
	}

	project := &models.Project{
		Title:         req.Title,
		Description:   req.Description,
		TechStack:     req.TechStack,
		TeamSize:      req.TeamSize,
		Status:        models.ProjectStatusRecruiting,
		DurationWeeks: req.DurationWeeks,
		CreatorID:     creator.ID,
		Creator:       *creator,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id int64) (*ProjectResponse, error) {
	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(project), nil
}

// GetAll retrieves all projects
func (s *ProjectService) GetAll() ([]ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project)
	}
	return responses, nil
}

// GetByCreatorID retrieves all projects created by a user
func (s *ProjectService) GetByCreatorID(creatorID int64) ([]ProjectResponse, error) {
	projects, err := s.repo.GetByCreatorID(creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects by creator: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project)
	}
	return responses, nil
}

// ChangeStatus changes a project's status. The manual override path is
// independent of capacity; the only guard is that the status must change.
func (s *ProjectService) ChangeStatus(id int64, status models.ProjectStatus) (*ProjectResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown project status %q", status))
	}

	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}
	if err := project.ChangeStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	return s.toResponse(project), nil
}

// ChangeContent overwrites a project's role-assignment content
func (s *ProjectService) ChangeContent(id int64, req *UpdateProjectContentRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	project, err := s.getProject(id)
	if err != nil {
		return nil, err
	}
	project.ChangeContent(req.Content)
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project content: %w", err)
	}

	return s.toResponse(project), nil
}

// Delete deletes a project and, via cascade, its applications
func (s *ProjectService) Delete(id int64) error {
	if _, err := s.getProject(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) getProject(id int64) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		TechStacks:      project.TechStacks(),
		TeamSize:        project.TeamSize,
		CurrentTeamSize: project.CurrentTeamSize,
		Creator:         project.Creator.Nickname,
		Status:          project.Status,
		Content:         project.Content,
		DurationWeeks:   project.DurationWeeks,
		CreatedAt:       project.CreatedAt,
	}
}
