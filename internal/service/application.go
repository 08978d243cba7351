package service

import (
	"errors"
	"fmt"
	"time"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ApplicationService handles business logic for applications. Status
// transitions are the only writes that touch project capacity; both sides of
// such a change are committed in one transaction by the repository.
type ApplicationService struct {
	repo        repository.ApplicationRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.ApplicationRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *ApplicationService {
	return &ApplicationService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// ApplyRequest represents the request to apply to a project. TechStacks and
// TechScores are parallel lists; entry i of each describes one skill.
type ApplyRequest struct {
	TechStacks []string `json:"tech_stacks" validate:"required,min=1,dive,required"`
	TechScores []int    `json:"tech_scores" validate:"required,min=1,dive,min=1,max=10"`
}

// UpdateApplicationStatusRequest represents the request to change an
// application's status
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}

// ApplicationResponse represents the response for application operations
type ApplicationResponse struct {
	ApplicationID int64                    `json:"application_id"`
	Nickname      string                   `json:"nickname"`
	Status        models.ApplicationStatus `json:"status"`
	AppliedAt     time.Time                `json:"applied_at"`
	TechNames     []string                 `json:"tech_names"`
	Scores        []int                    `json:"scores"`
}

// Create submits an application to a project on behalf of applicantID. Skill
// scores are created atomically with the application, one per declared tech.
func (s *ApplicationService) Create(applicantID, projectID int64, req *ApplyRequest) (*ApplicationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if len(req.TechStacks) != len(req.TechScores) {
		return nil, apperrors.NewValidationError("tech_scores", apperrors.ErrSkillScoreCount.Error())
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	application := &models.Application{
		UserID:    applicantID,
		ProjectID: project.ID,
		Status:    models.ApplicationStatusPending,
	}
	for i, tech := range req.TechStacks {
		application.SkillScores = append(application.SkillScores, models.SkillScore{
			TechName: tech,
			Score:    req.TechScores[i],
		})
	}

	if err := s.repo.Create(application); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	// Reload to pick up the applicant relation for the response
	created, err := s.repo.GetByID(application.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created application: %w", err)
	}
	return s.toResponse(created), nil
}

// GetByID retrieves an application by ID
func (s *ApplicationService) GetByID(id int64) (*ApplicationResponse, error) {
	application, err := s.getApplication(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(application), nil
}

// GetByProjectID retrieves all applications for a project
func (s *ApplicationService) GetByProjectID(projectID int64) ([]ApplicationResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	applications, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	return s.toResponses(applications), nil
}

// GetByUserID retrieves all applications submitted by a user
func (s *ApplicationService) GetByUserID(userID int64) ([]ApplicationResponse, error) {
	applications, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	return s.toResponses(applications), nil
}

// ChangeStatus moves an application to a new status and keeps the project's
// capacity counter in step: any transition into APPROVED takes a seat, any
// transition out of APPROVED releases it. The seat itself is taken under a
// row lock in the repository, against the project's current counter, so a
// stale read here cannot oversubscribe the team.
func (s *ApplicationService) ChangeStatus(id int64, status models.ApplicationStatus) (*ApplicationResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown application status %q", status))
	}

	application, err := s.getApplication(id)
	if err != nil {
		return nil, err
	}

	wasApproved := application.Status == models.ApplicationStatusApproved
	if err := application.ChangeStatus(status); err != nil {
		return nil, err
	}
	nowApproved := status == models.ApplicationStatusApproved

	var seatDelta int
	switch {
	case !wasApproved && nowApproved:
		seatDelta = 1
	case wasApproved && !nowApproved:
		seatDelta = -1
	}

	if err := s.repo.UpdateWithProject(application, seatDelta); err != nil {
		if apperrors.IsCapacityExceeded(err) || apperrors.IsInvalidTransition(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return s.toResponse(application), nil
}

// Delete removes an application. Withdrawing an APPROVED application frees
// its seat and reopens recruiting before the row goes away.
func (s *ApplicationService) Delete(id int64) error {
	application, err := s.getApplication(id)
	if err != nil {
		return err
	}

	var seatDelta int
	if application.Status == models.ApplicationStatusApproved {
		seatDelta = -1
	}

	if err := s.repo.DeleteWithProject(application, seatDelta); err != nil {
		if apperrors.IsInvalidTransition(err) {
			return err
		}
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}

func (s *ApplicationService) getApplication(id int64) (*models.Application, error) {
	application, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return application, nil
}

// toResponse converts an application model to response
func (s *ApplicationService) toResponse(application *models.Application) *ApplicationResponse {
	techNames := make([]string, len(application.SkillScores))
	scores := make([]int, len(application.SkillScores))
	for i, skill := range application.SkillScores {
		techNames[i] = skill.TechName
		scores[i] = skill.Score
	}

	return &ApplicationResponse{
		ApplicationID: application.ID,
		Nickname:      application.User.Nickname,
		Status:        application.Status,
		AppliedAt:     application.AppliedAt,
		TechNames:     techNames,
		Scores:        scores,
	}
}

func (s *ApplicationService) toResponses(applications []models.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, len(applications))
	for i, application := range applications {
		responses[i] = *s.toResponse(&application)
	}
	return responses
}
