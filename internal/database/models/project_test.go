package models_test

import (
	"testing"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func newProject(teamSize int) *models.Project {
	return &models.Project{
		Title:         "Realtime chat app",
		Description:   "Build a realtime chat application with presence",
		TechStack:     "Go, React, PostgreSQL",
		TeamSize:      teamSize,
		Status:        models.ProjectStatusRecruiting,
		DurationWeeks: 8,
		CreatorID:     1,
	}
}

func TestProjectTechStacks(t *testing.T) {
	p := newProject(3)
	assert.Equal(t, []string{"Go", "React", "PostgreSQL"}, p.TechStacks())

	p.TechStack = ""
	assert.Nil(t, p.TechStacks())

	p.TechStack = "C++"
	assert.Equal(t, []string{"C++"}, p.TechStacks())
}

func TestProjectIncreaseCurrentTeamSize(t *testing.T) {
	p := newProject(2)

	assert.NoError(t, p.IncreaseCurrentTeamSize())
	assert.Equal(t, 1, p.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusRecruiting, p.Status)

	// filling the last slot completes the project
	assert.NoError(t, p.IncreaseCurrentTeamSize())
	assert.Equal(t, 2, p.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)

	// capacity bound holds and state is unchanged on failure
	err := p.IncreaseCurrentTeamSize()
	assert.True(t, apperrors.IsCapacityExceeded(err))
	assert.Equal(t, 2, p.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
}

func TestProjectDecreaseCurrentTeamSize(t *testing.T) {
	p := newProject(2)
	p.CurrentTeamSize = 2
	p.Status = models.ProjectStatusCompleted

	assert.NoError(t, p.DecreaseCurrentTeamSize())
	assert.Equal(t, 1, p.CurrentTeamSize)
	assert.Equal(t, models.ProjectStatusRecruiting, p.Status)

	assert.NoError(t, p.DecreaseCurrentTeamSize())
	assert.Equal(t, 0, p.CurrentTeamSize)

	// counter never goes below zero
	err := p.DecreaseCurrentTeamSize()
	assert.ErrorIs(t, err, apperrors.ErrTeamSizeUnderflow)
	assert.Equal(t, 0, p.CurrentTeamSize)
}

func TestProjectCapacityInvariant(t *testing.T) {
	p := newProject(3)

	for i := 0; i < 3; i++ {
		assert.NoError(t, p.IncreaseCurrentTeamSize())
		assert.GreaterOrEqual(t, p.CurrentTeamSize, 0)
		assert.LessOrEqual(t, p.CurrentTeamSize, p.TeamSize)
	}
	// COMPLETED iff the counter reached the target
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)

	assert.NoError(t, p.DecreaseCurrentTeamSize())
	assert.Equal(t, models.ProjectStatusRecruiting, p.Status)
}

func TestProjectChangeStatus(t *testing.T) {
	p := newProject(3)

	err := p.ChangeStatus(models.ProjectStatusRecruiting)
	assert.True(t, apperrors.IsInvalidTransition(err))

	assert.NoError(t, p.ChangeStatus(models.ProjectStatusCompleted))
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)

	// manual override is independent of capacity and re-enterable
	assert.NoError(t, p.ChangeStatus(models.ProjectStatusRecruiting))
	assert.Equal(t, models.ProjectStatusRecruiting, p.Status)
}

func TestProjectChangeContent(t *testing.T) {
	p := newProject(3)
	p.ChangeContent("alice - backend | strongest Go scores")
	assert.Equal(t, "alice - backend | strongest Go scores", p.Content)

	p.ChangeContent("updated")
	assert.Equal(t, "updated", p.Content)
}

func TestProjectStatusIsValid(t *testing.T) {
	assert.True(t, models.ProjectStatusRecruiting.IsValid())
	assert.True(t, models.ProjectStatusCompleted.IsValid())
	assert.False(t, models.ProjectStatus("ARCHIVED").IsValid())
}
