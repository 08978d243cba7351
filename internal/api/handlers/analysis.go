package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles HTTP requests for compatibility analysis operations
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetAnalysisResult handles GET /analysis/application/:applicationId
// @Summary Get compatibility analysis
// @Description Get the stored compatibility analysis for an application
// @Tags analysis
// @Accept json
// @Produce json
// @Param applicationId path int true "Application ID"
// @Success 200 {object} service.AnalysisResultResponse "Successfully retrieved analysis"
// @Failure 400 {object} ErrorResponse "Invalid application ID"
// @Failure 404 {object} ErrorResponse "Analysis result not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /analysis/application/{applicationId} [get]
func (h *AnalysisHandler) GetAnalysisResult(c *gin.Context) {
	applicationID, err := strconv.ParseInt(c.Param("applicationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	result, err := h.analysisService.GetAnalysisResult(applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAnalysisResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateAnalysisResult handles POST /analysis/application/:applicationId
// @Summary Run compatibility analysis
// @Description Score an application against its project and store the result
// @Tags analysis
// @Accept json
// @Produce json
// @Param applicationId path int true "Application ID"
// @Success 201 {object} service.AnalysisResultResponse "Successfully created analysis"
// @Failure 400 {object} ErrorResponse "Invalid application ID"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 409 {object} ErrorResponse "Analysis already exists"
// @Failure 502 {object} ErrorResponse "Model returned an unusable response"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /analysis/application/{applicationId} [post]
func (h *AnalysisHandler) CreateAnalysisResult(c *gin.Context) {
	applicationID, err := strconv.ParseInt(c.Param("applicationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	result, err := h.analysisService.CreateAnalysisResult(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsDuplicateAnalysis(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsMalformedModelResponse(err) || apperrors.IsInvalidScore(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CreateTeamRoleAssignment handles POST /analysis/project/:projectId/role-assignment
// @Summary Assign team roles
// @Description Ask the model to assign a role to every approved teammate of a full project
// @Tags analysis
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {object} service.RoleAssignmentResponse "Successfully assigned roles"
// @Failure 400 {object} ErrorResponse "Invalid project ID or team not full"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 502 {object} ErrorResponse "Model returned an unusable response"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /analysis/project/{projectId}/role-assignment [post]
func (h *AnalysisHandler) CreateTeamRoleAssignment(c *gin.Context) {
	projectID, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	result, err := h.analysisService.CreateTeamRoleAssignment(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsTeamNotFull(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsMalformedModelResponse(err) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
