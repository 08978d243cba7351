//go:build integration
// +build integration

package repository

import (
	"testing"

	"devmatch-backend/internal/database/models"
	"devmatch-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AnalysisRepositoryTestSuite tests the AnalysisRepository
type AnalysisRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	repo            *AnalysisRepository
	applicationRepo *ApplicationRepository
	userRepo        *UserRepository
	projectRepo     *ProjectRepository
	factories       *testutils.FactorySet
}

func (suite *AnalysisRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAnalysisRepository(suite.baseTestSuite.DB)
	suite.applicationRepo = NewApplicationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *AnalysisRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *AnalysisRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *AnalysisRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AnalysisRepositoryTestSuite) createApplication() *models.Application {
	creator := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(creator))

	applicant := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(applicant))

	project := suite.factories.Project.WithCreator(creator.ID)
	suite.Require().NoError(suite.projectRepo.Create(project))

	application := suite.factories.Application.Create(applicant.ID, project.ID)
	suite.Require().NoError(suite.applicationRepo.Create(application))

	return application
}

// TestCreateAndGet tests the round trip through the analysis_results table
func (suite *AnalysisRepositoryTestSuite) TestCreateAndGet() {
	application := suite.createApplication()

	result := suite.factories.Analysis.Create(application.ID)
	err := suite.repo.Create(result)

	suite.NoError(err)
	suite.NotZero(result.ID)

	retrieved, err := suite.repo.GetByApplicationID(application.ID)
	suite.NoError(err)
	suite.Equal(result.CompatibilityScore, retrieved.CompatibilityScore)
	suite.Equal(result.CompatibilityReason, retrieved.CompatibilityReason)
}

// TestGetNotFound tests the miss path
func (suite *AnalysisRepositoryTestSuite) TestGetNotFound() {
	_, err := suite.repo.GetByApplicationID(99999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateApplicationRejected tests the unique index on application_id
func (suite *AnalysisRepositoryTestSuite) TestDuplicateApplicationRejected() {
	application := suite.createApplication()

	suite.Require().NoError(suite.repo.Create(suite.factories.Analysis.Create(application.ID)))

	err := suite.repo.Create(suite.factories.Analysis.Create(application.ID))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestDeletedWithApplication tests that results follow their application
func (suite *AnalysisRepositoryTestSuite) TestDeletedWithApplication() {
	application := suite.createApplication()
	suite.Require().NoError(suite.repo.Create(suite.factories.Analysis.Create(application.ID)))

	suite.Require().NoError(suite.applicationRepo.DeleteWithProject(application, 0))

	_, err := suite.repo.GetByApplicationID(application.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestAnalysisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisRepositoryTestSuite))
}
