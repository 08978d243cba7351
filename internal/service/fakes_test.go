package service

import (
	"context"

	"devmatch-backend/internal/database/models"

	"gorm.io/gorm"
)

// In-memory repository fakes for service tests. They mimic the storage
// layer's contract, including gorm.ErrRecordNotFound for misses and
// gorm.ErrDuplicatedKey where a unique index would fire.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

type fakeProjectRepo struct {
	projects map[int64]*models.Project
	nextID   int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]*models.Project), nextID: 1}
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	project.ID = r.nextID
	r.nextID++
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) GetByID(id int64) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return project, nil
}

func (r *fakeProjectRepo) GetAll() ([]models.Project, error) {
	projects := make([]models.Project, 0, len(r.projects))
	for _, project := range r.projects {
		projects = append(projects, *project)
	}
	return projects, nil
}

func (r *fakeProjectRepo) GetByCreatorID(creatorID int64) ([]models.Project, error) {
	var projects []models.Project
	for _, project := range r.projects {
		if project.CreatorID == creatorID {
			projects = append(projects, *project)
		}
	}
	return projects, nil
}

func (r *fakeProjectRepo) Update(project *models.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(id int64) error {
	if _, ok := r.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.projects, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[int64]*models.Application
	projectRepo  *fakeProjectRepo
	nextID       int64
}

func newFakeApplicationRepo(projectRepo *fakeProjectRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[int64]*models.Application),
		projectRepo:  projectRepo,
		nextID:       1,
	}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	application.ID = r.nextID
	r.nextID++
	for i := range application.SkillScores {
		application.SkillScores[i].ApplicationID = application.ID
	}
	r.applications[application.ID] = application
	return nil
}

// GetByID returns a copy, as a real query scans into a fresh struct; callers
// mutating the result must go through UpdateWithProject to persist anything.
func (r *fakeApplicationRepo) GetByID(id int64) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := *application
	if project, ok := r.projectRepo.projects[application.ProjectID]; ok {
		loaded.Project = *project
	}
	return &loaded, nil
}

func (r *fakeApplicationRepo) GetByProjectID(projectID int64) ([]models.Application, error) {
	var applications []models.Application
	for _, application := range r.applications {
		if application.ProjectID == projectID {
			applications = append(applications, *application)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) GetByUserID(userID int64) ([]models.Application, error) {
	var applications []models.Application
	for _, application := range r.applications {
		if application.UserID == userID {
			applications = append(applications, *application)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) GetByProjectIDAndStatus(projectID int64, status models.ApplicationStatus) ([]models.Application, error) {
	var applications []models.Application
	for _, application := range r.applications {
		if application.ProjectID == projectID && application.Status == status {
			applications = append(applications, *application)
		}
	}
	return applications, nil
}

// applySeatDelta mirrors the repository's locked counter move: the stored
// project is mutated through the domain rules, and a rejection leaves every
// row untouched.
func (r *fakeApplicationRepo) applySeatDelta(projectID int64, seatDelta int) error {
	if seatDelta == 0 {
		return nil
	}
	project, ok := r.projectRepo.projects[projectID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if seatDelta > 0 {
		return project.IncreaseCurrentTeamSize()
	}
	return project.DecreaseCurrentTeamSize()
}

func (r *fakeApplicationRepo) UpdateWithProject(application *models.Application, seatDelta int) error {
	stored, ok := r.applications[application.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if err := r.applySeatDelta(application.ProjectID, seatDelta); err != nil {
		return err
	}
	stored.Status = application.Status
	return nil
}

func (r *fakeApplicationRepo) DeleteWithProject(application *models.Application, seatDelta int) error {
	if _, ok := r.applications[application.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := r.applySeatDelta(application.ProjectID, seatDelta); err != nil {
		return err
	}
	delete(r.applications, application.ID)
	return nil
}

type fakeAnalysisRepo struct {
	results map[int64]*models.AnalysisResult
	nextID  int64
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{results: make(map[int64]*models.AnalysisResult), nextID: 1}
}

func (r *fakeAnalysisRepo) Create(result *models.AnalysisResult) error {
	if _, ok := r.results[result.ApplicationID]; ok {
		return gorm.ErrDuplicatedKey
	}
	result.ID = r.nextID
	r.nextID++
	r.results[result.ApplicationID] = result
	return nil
}

func (r *fakeAnalysisRepo) GetByApplicationID(applicationID int64) (*models.AnalysisResult, error) {
	result, ok := r.results[applicationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return result, nil
}

// fakeLLMClient returns a canned response and records the last prompt.
type fakeLLMClient struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (c *fakeLLMClient) Complete(_ context.Context, prompt string) (string, error) {
	c.calls++
	c.lastPrompt = prompt
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}
