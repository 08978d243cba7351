package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/llm"
	"devmatch-backend/internal/logger"
	"devmatch-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Scores below this band read as model over-penalizing thin profiles;
	// they are lifted to correctedScore before persisting.
	minTrustedScore = 25.0
	correctedScore  = 45.0

	// roleAssignmentMaxRunes bounds the stored role-assignment text.
	roleAssignmentMaxRunes = 250
)

// AnalysisService runs the model-backed workflows: compatibility scoring for
// a single application and role assignment for a full team.
type AnalysisService struct {
	applicationRepo repository.ApplicationRepositoryInterface
	projectRepo     repository.ProjectRepositoryInterface
	analysisRepo    repository.AnalysisRepositoryInterface
	llmClient       llm.Client
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(applicationRepo repository.ApplicationRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, analysisRepo repository.AnalysisRepositoryInterface, llmClient llm.Client) *AnalysisService {
	return &AnalysisService{
		applicationRepo: applicationRepo,
		projectRepo:     projectRepo,
		analysisRepo:    analysisRepo,
		llmClient:       llmClient,
	}
}

// AnalysisResultResponse represents a persisted compatibility analysis
type AnalysisResultResponse struct {
	ApplicationID       int64   `json:"application_id"`
	CompatibilityScore  float64 `json:"compatibility_score"`
	CompatibilityReason string  `json:"compatibility_reason"`
}

// RoleAssignmentResponse represents a team role assignment
type RoleAssignmentResponse struct {
	ProjectID      int64  `json:"project_id"`
	RoleAssignment string `json:"role_assignment"`
}

// GetAnalysisResult retrieves the stored analysis for an application
func (s *AnalysisService) GetAnalysisResult(applicationID int64) (*AnalysisResultResponse, error) {
	result, err := s.analysisRepo.GetByApplicationID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnalysisResultNotFound
		}
		return nil, fmt.Errorf("failed to get analysis result: %w", err)
	}

	return &AnalysisResultResponse{
		ApplicationID:       result.ApplicationID,
		CompatibilityScore:  result.CompatibilityScore,
		CompatibilityReason: result.CompatibilityReason,
	}, nil
}

// CreateAnalysisResult scores an application against its project and stores
// the verdict. Each application gets exactly one analysis; a second request
// fails with a duplicate error.
func (s *AnalysisService) CreateAnalysisResult(ctx context.Context, applicationID int64) (*AnalysisResultResponse, error) {
	application, err := s.applicationRepo.GetByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	if application.AnalysisResult != nil {
		return nil, &apperrors.DuplicateAnalysisError{ApplicationID: applicationID}
	}

	prompt := buildCompatibilityPrompt(&application.Project, application)
	raw, err := s.llmClient.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("compatibility completion failed: %w", err)
	}

	score, reason, err := parseCompatibilityResponse(raw)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		ApplicationID:       applicationID,
		CompatibilityScore:  score,
		CompatibilityReason: reason,
	}
	if err := s.analysisRepo.Create(result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.DuplicateAnalysisError{ApplicationID: applicationID}
		}
		return nil, fmt.Errorf("failed to store analysis result: %w", err)
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"application_id": applicationID,
		"score":          score,
	}).Info("Stored compatibility analysis")

	return &AnalysisResultResponse{
		ApplicationID:       applicationID,
		CompatibilityScore:  score,
		CompatibilityReason: reason,
	}, nil
}

// CreateTeamRoleAssignment asks the model to assign a role to every approved
// teammate of a fully staffed project.
func (s *AnalysisService) CreateTeamRoleAssignment(ctx context.Context, projectID int64) (*RoleAssignmentResponse, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	approved, err := s.applicationRepo.GetByProjectIDAndStatus(projectID, models.ApplicationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved applications: %w", err)
	}
	if len(approved) != project.TeamSize {
		return nil, &apperrors.TeamNotFullError{Expected: project.TeamSize, Actual: len(approved)}
	}

	prompt := buildRoleAssignmentPrompt(project, approved)
	raw, err := s.llmClient.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("role assignment completion failed: %w", err)
	}

	assignment := strings.TrimSpace(raw)
	if assignment == "" {
		return nil, &apperrors.MalformedModelResponseError{Response: raw, Detail: "empty role assignment"}
	}
	assignment = truncateRunes(assignment, roleAssignmentMaxRunes)

	logger.WithContext(ctx).WithField("project_id", projectID).Info("Generated team role assignment")

	return &RoleAssignmentResponse{
		ProjectID:      projectID,
		RoleAssignment: assignment,
	}, nil
}

// parseCompatibilityResponse extracts the score and reason from the model's
// "<score>|<reason>" reply. Scores outside [0,100] are rejected; scores below
// minTrustedScore are lifted to correctedScore.
func parseCompatibilityResponse(raw string) (float64, string, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "|", 2)
	if len(parts) < 2 {
		return 0, "", &apperrors.MalformedModelResponseError{Response: raw, Detail: "missing '|' separator"}
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, "", &apperrors.MalformedModelResponseError{Response: raw, Detail: "score is not a number"}
	}
	if score < 0 || score > 100 {
		return 0, "", &apperrors.InvalidScoreError{Score: score}
	}

	reason := strings.TrimSpace(parts[1])
	if reason == "" {
		return 0, "", &apperrors.MalformedModelResponseError{Response: raw, Detail: "empty reason"}
	}

	if score < minTrustedScore {
		logrus.WithFields(logrus.Fields{
			"raw_score":       score,
			"corrected_score": correctedScore,
		}).Info("Compatibility score below trusted band, corrected")
		score = correctedScore
	}

	return math.Round(score*100) / 100, reason, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func buildCompatibilityPrompt(project *models.Project, application *models.Application) string {
	var b strings.Builder

	b.WriteString("You are evaluating how well an applicant fits a project team.\n\n")

	b.WriteString("Project:\n")
	fmt.Fprintf(&b, "- Title: %s\n", project.Title)
	fmt.Fprintf(&b, "- Description: %s\n", project.Description)
	fmt.Fprintf(&b, "- Tech stack: %s\n", project.TechStack)
	fmt.Fprintf(&b, "- Duration: %d weeks\n\n", project.DurationWeeks)

	fmt.Fprintf(&b, "Applicant: %s\n", application.User.Nickname)
	b.WriteString("Self-assessed skills (1-10):\n")
	for _, skill := range application.SkillScores {
		fmt.Fprintf(&b, "- %s: %d\n", skill.TechName, skill.Score)
	}
	b.WriteString("\n")

	b.WriteString("Scoring guide:\n")
	b.WriteString("- 90-100: skills cover the full stack at a high level\n")
	b.WriteString("- 70-89: strong overlap with the core stack, minor gaps\n")
	b.WriteString("- 50-69: partial overlap, meaningful gaps remain\n")
	b.WriteString("- 25-49: weak overlap, would need significant ramp-up\n")
	b.WriteString("- 0-24: essentially no relevant skills\n\n")

	b.WriteString("Special considerations:\n")
	b.WriteString("- Weight skills that appear in the project's tech stack most heavily.\n")
	b.WriteString("- Adjacent or transferable skills count partially.\n")
	b.WriteString("- A short project duration favors applicants who are productive immediately.\n\n")

	b.WriteString("Respond with exactly one line in the form <score>|<reason>.\n")
	b.WriteString("The score is a number between 0 and 100 with up to two decimals.\n")
	b.WriteString("The reason is one or two sentences. Do not add any other text.\n\n")

	b.WriteString("Examples:\n")
	b.WriteString("85.00|Covers React and TypeScript at a high level, only missing CI experience.\n")
	b.WriteString("40.00|Knows adjacent backend tools but none of the required stack directly.\n")

	return b.String()
}

func buildRoleAssignmentPrompt(project *models.Project, approved []models.Application) string {
	var b strings.Builder

	b.WriteString("Assign a role to every member of this project team.\n\n")

	b.WriteString("Project:\n")
	fmt.Fprintf(&b, "- Title: %s\n", project.Title)
	fmt.Fprintf(&b, "- Description: %s\n", project.Description)
	fmt.Fprintf(&b, "- Tech stack: %s\n", project.TechStack)
	fmt.Fprintf(&b, "- Duration: %d weeks\n\n", project.DurationWeeks)

	b.WriteString("Team members and their self-assessed skills (1-10):\n")
	for _, application := range approved {
		fmt.Fprintf(&b, "- %s:", application.User.Nickname)
		for i, skill := range application.SkillScores {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, " %s %d", skill.TechName, skill.Score)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Give every member exactly one role that plays to their strongest skills\n")
	b.WriteString("and covers the project's needs. Respond with one line per member in the\n")
	b.WriteString("form: name - role | reason. Answer in the same language as the input.\n")
	b.WriteString("Do not add any preamble or closing text.\n")

	return b.String()
}
