package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devmatch-backend/internal/database"
	"devmatch-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"devmatch-backend/internal/config"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username      string `yaml:"username"`
	Nickname      string `yaml:"nickname"`
	ProfileImgURL string `yaml:"profile_img_url,omitempty"`
}

type ProjectData struct {
	Title           string `yaml:"title"`
	CreatorUsername string `yaml:"creator_username"`
	Description     string `yaml:"description"`
	TechStack       string `yaml:"tech_stack"`
	TeamSize        int    `yaml:"team_size"`
	DurationWeeks   int    `yaml:"duration_weeks"`
	Status          string `yaml:"status,omitempty"`
	Content         string `yaml:"content,omitempty"`
}

type ApplicationData struct {
	Username     string         `yaml:"username"`
	ProjectTitle string         `yaml:"project_title"`
	Status       string         `yaml:"status,omitempty"`
	Skills       map[string]int `yaml:"skills"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type ApplicationsFile struct {
	Applications []ApplicationData `yaml:"applications"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // suppress SQL logs and "record not found" during lookups
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	applications, err := loadApplications(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create projects
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range projects {
		project, created, err := createProject(db, projectData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Title, err)
		}
		projectMap[projectData.Title] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projects))

	// Create applications last; approved ones fill their project's seats
	applicationCreated := 0
	for _, applicationData := range applications {
		_, created, err := createApplication(db, applicationData, userMap, projectMap)
		if err != nil {
			log.Printf("Warning: failed to create application by %s for %s: %v",
				applicationData.Username, applicationData.ProjectTitle, err)
			continue
		}
		if created {
			applicationCreated++
		}
	}
	log.Printf("Applications: %d created, %d total", applicationCreated, len(applications))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func loadApplications(dataDir string) ([]ApplicationData, error) {
	var allApplications []ApplicationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "applications") {
			var file ApplicationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allApplications = append(allApplications, file.Applications...)
		}
		return nil
	})

	return allApplications, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("username = ?", userData.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Username:      userData.Username,
				Nickname:      userData.Nickname,
				ProfileImgURL: userData.ProfileImgURL,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil // existing
}

func createProject(db *gorm.DB, projectData ProjectData, userMap map[string]*models.User) (*models.Project, bool, error) {
	creator := userMap[projectData.CreatorUsername]
	if creator == nil {
		return nil, false, fmt.Errorf("creator %s not found for project %s", projectData.CreatorUsername, projectData.Title)
	}

	var project models.Project
	if err := db.Where("title = ? AND creator_id = ?", projectData.Title, creator.ID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ProjectStatusRecruiting
			if projectData.Status != "" {
				status = models.ProjectStatus(projectData.Status)
			}

			project = models.Project{
				Title:         projectData.Title,
				Description:   projectData.Description,
				TechStack:     projectData.TechStack,
				TeamSize:      projectData.TeamSize,
				Status:        status,
				Content:       projectData.Content,
				DurationWeeks: projectData.DurationWeeks,
				CreatorID:     creator.ID,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}
			return &project, true, nil
		}
		return nil, false, fmt.Errorf("failed to query project: %w", err)
	}

	return &project, false, nil // existing
}

func createApplication(db *gorm.DB, applicationData ApplicationData, userMap map[string]*models.User, projectMap map[string]*models.Project) (*models.Application, bool, error) {
	user := userMap[applicationData.Username]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found", applicationData.Username)
	}
	project := projectMap[applicationData.ProjectTitle]
	if project == nil {
		return nil, false, fmt.Errorf("project %s not found", applicationData.ProjectTitle)
	}

	var application models.Application
	if err := db.Where("user_id = ? AND project_id = ?", user.ID, project.ID).First(&application).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ApplicationStatusPending
			if applicationData.Status != "" {
				status = models.ApplicationStatus(applicationData.Status)
			}

			application = models.Application{
				UserID:    user.ID,
				ProjectID: project.ID,
				Status:    status,
			}
			for tech, score := range applicationData.Skills {
				application.SkillScores = append(application.SkillScores, models.SkillScore{
					TechName: tech,
					Score:    score,
				})
			}

			if err := db.Create(&application).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create application: %w", err)
			}

			// Keep the project's seat counter honest for seeded approvals
			if status == models.ApplicationStatusApproved {
				if err := project.IncreaseCurrentTeamSize(); err != nil {
					log.Printf("Warning: project %s already full, seeded approval not counted: %v", project.Title, err)
				} else if err := db.Model(project).Updates(map[string]interface{}{
					"current_team_size": project.CurrentTeamSize,
					"status":            project.Status,
				}).Error; err != nil {
					return nil, false, fmt.Errorf("failed to update project seats: %w", err)
				}
			}

			return &application, true, nil
		}
		return nil, false, fmt.Errorf("failed to query application: %w", err)
	}

	return &application, false, nil // existing
}
