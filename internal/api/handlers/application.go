package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles HTTP requests for application operations
type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// GetApplication handles GET /applications/:id
// @Summary Get application by ID
// @Description Get a specific application with its skill self-assessments
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} service.ApplicationResponse "Successfully retrieved application"
// @Failure 400 {object} ErrorResponse "Invalid application ID"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	application, err := h.applicationService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, application)
}

// UpdateApplicationStatus handles PATCH /applications/:id/status
// @Summary Update application status
// @Description Approve or reject an application; approving takes a team seat
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param status body service.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} service.ApplicationResponse "Successfully updated application"
// @Failure 400 {object} ErrorResponse "Invalid request or transition"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	var req service.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.applicationService.ChangeStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) || apperrors.IsInvalidTransition(err) || apperrors.IsCapacityExceeded(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, application)
}

// DeleteApplication handles DELETE /applications/:id
// @Summary Withdraw an application
// @Description Delete an application; withdrawing an approved one frees its team seat
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Success 204 "Successfully deleted application"
// @Failure 400 {object} ErrorResponse "Invalid application ID"
// @Failure 404 {object} ErrorResponse "Application not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	if err := h.applicationService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidTransition(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
