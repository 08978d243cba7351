package handlers

import (
	"errors"
	"net/http"

	"devmatch-backend/internal/auth"
	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService        *service.UserService
	projectService     *service.ProjectService
	applicationService *service.ApplicationService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, projectService *service.ProjectService, applicationService *service.ApplicationService) *UserHandler {
	return &UserHandler{
		userService:        userService,
		projectService:     projectService,
		applicationService: applicationService,
	}
}

// UserProfileResponse represents the current user's profile
type UserProfileResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Nickname      string `json:"nickname"`
	ProfileImgURL string `json:"profile_img_url"`
}

func currentUserID(c *gin.Context) (int64, error) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return 0, apperrors.ErrUserIDNotFound
	}
	return userID, nil
}

// GetProfile handles GET /users/profile
// @Summary Get current user profile
// @Description Get the profile of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} UserProfileResponse "Successfully retrieved profile"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.GetByID(userID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		// First authenticated request for a token minted before the user
		// record existed: provision from the claims.
		username, _ := auth.GetUsername(c)
		nickname, _ := auth.GetNickname(c)
		user, err = h.userService.GetOrCreate(username, nickname)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Nickname:      user.Nickname,
		ProfileImgURL: user.ProfileImgURLOrDefault(),
	})
}

// GetMyProjects handles GET /users/projects
// @Summary List current user's projects
// @Description List all projects created by the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {array} service.ProjectResponse "Successfully retrieved projects"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/projects [get]
func (h *UserHandler) GetMyProjects(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	projects, err := h.projectService.GetByCreatorID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetMyApplications handles GET /users/applications
// @Summary List current user's applications
// @Description List all applications submitted by the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {array} service.ApplicationResponse "Successfully retrieved applications"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/applications [get]
func (h *UserHandler) GetMyApplications(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	applications, err := h.applicationService.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, applications)
}
