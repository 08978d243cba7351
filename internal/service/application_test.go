package service

import (
	"testing"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationFixture struct {
	service         *ApplicationService
	projectRepo     *fakeProjectRepo
	applicationRepo *fakeApplicationRepo
	project         *models.Project
}

func newApplicationFixture(t *testing.T, teamSize int) *applicationFixture {
	t.Helper()

	projectRepo := newFakeProjectRepo()
	applicationRepo := newFakeApplicationRepo(projectRepo)

	project := &models.Project{
		Title:         "DevMatch Web",
		Description:   "Team formation platform",
		TechStack:     "React, Go",
		TeamSize:      teamSize,
		Status:        models.ProjectStatusRecruiting,
		DurationWeeks: 8,
		CreatorID:     1,
	}
	require.NoError(t, projectRepo.Create(project))

	return &applicationFixture{
		service:         NewApplicationService(applicationRepo, projectRepo, validator.New()),
		projectRepo:     projectRepo,
		applicationRepo: applicationRepo,
		project:         project,
	}
}

func (f *applicationFixture) apply(t *testing.T, userID int64, status models.ApplicationStatus) *models.Application {
	t.Helper()
	application := &models.Application{
		UserID:    userID,
		ProjectID: f.project.ID,
		Status:    status,
		User:      models.User{ID: userID, Nickname: "Applicant"},
		SkillScores: []models.SkillScore{
			{TechName: "React", Score: 7},
		},
	}
	require.NoError(t, f.applicationRepo.Create(application))
	if status == models.ApplicationStatusApproved {
		require.NoError(t, f.project.IncreaseCurrentTeamSize())
	}
	return application
}

func TestApplicationCreate(t *testing.T) {
	f := newApplicationFixture(t, 3)

	response, err := f.service.Create(2, f.project.ID, &ApplyRequest{
		TechStacks: []string{"React", "Go"},
		TechScores: []int{8, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, response.Status)
	assert.Equal(t, []string{"React", "Go"}, response.TechNames)
	assert.Equal(t, []int{8, 5}, response.Scores)

	// Applying never touches the seat counter
	assert.Equal(t, 0, f.project.CurrentTeamSize)
}

func TestApplicationCreateMismatchedSkillLists(t *testing.T) {
	f := newApplicationFixture(t, 3)

	_, err := f.service.Create(2, f.project.ID, &ApplyRequest{
		TechStacks: []string{"React", "Go"},
		TechScores: []int{8},
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationCreateScoreOutOfRange(t *testing.T) {
	f := newApplicationFixture(t, 3)

	for _, score := range []int{0, 11} {
		_, err := f.service.Create(2, f.project.ID, &ApplyRequest{
			TechStacks: []string{"React"},
			TechScores: []int{score},
		})
		assert.Error(t, err, "score %d", score)
	}
}

func TestApplicationCreateProjectNotFound(t *testing.T) {
	f := newApplicationFixture(t, 3)

	_, err := f.service.Create(2, 999, &ApplyRequest{
		TechStacks: []string{"React"},
		TechScores: []int{8},
	})
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestApplicationApproveTakesSeat(t *testing.T) {
	f := newApplicationFixture(t, 2)
	application := f.apply(t, 2, models.ApplicationStatusPending)

	response, err := f.service.ChangeStatus(application.ID, models.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, response.Status)

	project, err := f.projectRepo.GetByID(f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusRecruiting, project.Status)
}

func TestApplicationApproveFillsTeam(t *testing.T) {
	f := newApplicationFixture(t, 1)
	application := f.apply(t, 2, models.ApplicationStatusPending)

	_, err := f.service.ChangeStatus(application.ID, models.ApplicationStatusApproved)
	require.NoError(t, err)

	project, err := f.projectRepo.GetByID(f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusCompleted, project.Status)
}

func TestApplicationApproveAtCapacityFails(t *testing.T) {
	f := newApplicationFixture(t, 1)
	f.apply(t, 2, models.ApplicationStatusApproved)
	pending := f.apply(t, 3, models.ApplicationStatusPending)

	_, err := f.service.ChangeStatus(pending.ID, models.ApplicationStatusApproved)
	assert.True(t, apperrors.IsCapacityExceeded(err))

	// Neither side of the failed transition is persisted
	stored, getErr := f.applicationRepo.GetByID(pending.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
	assert.Equal(t, 1, f.project.CurrentTeamSize)
}

func TestApplicationUnapproveReleasesSeat(t *testing.T) {
	f := newApplicationFixture(t, 1)
	approved := f.apply(t, 2, models.ApplicationStatusApproved)
	require.Equal(t, models.ProjectStatusCompleted, f.project.Status)

	_, err := f.service.ChangeStatus(approved.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	project, err := f.projectRepo.GetByID(f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, project.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusRecruiting, project.Status)
}

func TestApplicationSameStatusRejected(t *testing.T) {
	f := newApplicationFixture(t, 2)
	application := f.apply(t, 2, models.ApplicationStatusPending)

	_, err := f.service.ChangeStatus(application.ID, models.ApplicationStatusPending)
	assert.True(t, apperrors.IsInvalidTransition(err))
	assert.Equal(t, 0, f.project.CurrentTeamSize)
}

func TestApplicationChangeStatusUnknownStatus(t *testing.T) {
	f := newApplicationFixture(t, 2)
	application := f.apply(t, 2, models.ApplicationStatusPending)

	_, err := f.service.ChangeStatus(application.ID, models.ApplicationStatus("ARCHIVED"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationChangeStatusNotFound(t *testing.T) {
	f := newApplicationFixture(t, 2)

	_, err := f.service.ChangeStatus(999, models.ApplicationStatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestApplicationDeleteApprovedReleasesSeat(t *testing.T) {
	f := newApplicationFixture(t, 1)
	approved := f.apply(t, 2, models.ApplicationStatusApproved)

	require.NoError(t, f.service.Delete(approved.ID))

	_, err := f.applicationRepo.GetByID(approved.ID)
	assert.Error(t, err)

	project, err := f.projectRepo.GetByID(f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, project.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusRecruiting, project.Status)
}

func TestApplicationDeletePendingKeepsSeatCount(t *testing.T) {
	f := newApplicationFixture(t, 2)
	f.apply(t, 2, models.ApplicationStatusApproved)
	pending := f.apply(t, 3, models.ApplicationStatusPending)

	require.NoError(t, f.service.Delete(pending.ID))
	assert.Equal(t, 1, f.project.CurrentTeamSize)
}

func TestApplicationGetByProjectID(t *testing.T) {
	f := newApplicationFixture(t, 3)
	f.apply(t, 2, models.ApplicationStatusPending)
	f.apply(t, 3, models.ApplicationStatusApproved)

	responses, err := f.service.GetByProjectID(f.project.ID)
	require.NoError(t, err)
	assert.Len(t, responses, 2)

	_, err = f.service.GetByProjectID(999)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestApplicationGetByUserID(t *testing.T) {
	f := newApplicationFixture(t, 3)
	f.apply(t, 2, models.ApplicationStatusPending)

	responses, err := f.service.GetByUserID(2)
	require.NoError(t, err)
	assert.Len(t, responses, 1)

	responses, err = f.service.GetByUserID(999)
	require.NoError(t, err)
	assert.Empty(t, responses)
}
