package routes

import (
	"time"

	"devmatch-backend/internal/api/handlers"
	"devmatch-backend/internal/api/middleware"
	"devmatch-backend/internal/auth"
	"devmatch-backend/internal/config"
	"devmatch-backend/internal/llm"
	"devmatch-backend/internal/repository"
	"devmatch-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, llmClient llm.Client) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, userRepo, validator)
	applicationService := service.NewApplicationService(applicationRepo, projectRepo, validator)
	analysisService := service.NewAnalysisService(applicationRepo, projectRepo, analysisRepo, llmClient)

	// Initialize auth service and middleware
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLHours)*time.Hour)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService, applicationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	userHandler := handlers.NewUserHandler(userService, projectService, applicationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id/status", projectHandler.UpdateProjectStatus)
			projects.PATCH("/:id/content", projectHandler.UpdateProjectContent)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/applications", projectHandler.ListProjectApplications)
			projects.POST("/:id/applications", projectHandler.ApplyToProject)
		}

		// Application routes
		applications := v1.Group("/applications")
		{
			applications.GET("/:id", applicationHandler.GetApplication)
			applications.PATCH("/:id/status", applicationHandler.UpdateApplicationStatus)
			applications.DELETE("/:id", applicationHandler.DeleteApplication)
		}

		// Analysis routes
		analysis := v1.Group("/analysis")
		{
			analysis.GET("/application/:applicationId", analysisHandler.GetAnalysisResult)
			analysis.POST("/application/:applicationId", analysisHandler.CreateAnalysisResult)
			analysis.POST("/project/:projectId/role-assignment", analysisHandler.CreateTeamRoleAssignment)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/profile", userHandler.GetProfile)
			users.GET("/projects", userHandler.GetMyProjects)
			users.GET("/applications", userHandler.GetMyApplications)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
