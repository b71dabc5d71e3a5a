package app

import (
	"testing"

	"github.com/abidnoul/portfolio/internal/config"
	"github.com/abidnoul/portfolio/internal/middleware"
	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/repository"
	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "hunter2"
	testJWTSecret     = "test-secret"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// setupRouter mounts the full route table on a test engine backed by the
// given database, with Redis and RabbitMQ absent.
func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cfg := &config.Config{
		SiteURL:           "http://example.com",
		ClientURL:         "http://localhost:3000",
		JWTSecret:         testJWTSecret,
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: string(hash),
	}

	profileRepo := repository.NewProfileRepository(db, nil)
	skillRepo := repository.NewSkillCategoryRepository(db, nil)
	educationRepo := repository.NewEducationRepository(db)
	projectRepo := repository.NewProjectRepository(db, nil)
	serviceRepo := repository.NewServiceRepository(db, nil)
	contactRepo := repository.NewContactRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	pageService := service.NewPageService(profileRepo, skillRepo, educationRepo, projectRepo, serviceRepo)
	contactService := service.NewContactService(contactRepo, nil)
	blogService := service.NewBlogService(blogRepo, profileRepo, false)
	projectService := service.NewProjectService(projectRepo)
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorBoundary())
	r.LoadHTMLGlob("../../web/templates/*.html")

	RegisterRoutes(r, cfg,
		NewPageHandler(pageService),
		NewContactHandler(contactService, pageService),
		NewSkillsAPIHandler(pageService),
		NewBlogHandler(blogService),
		NewAuthHandler(authService, cfg.JWTSecret),
		NewAdminHandler(contactService, blogService, projectService),
	)

	return r
}

func seedProfile(t *testing.T, db *gorm.DB) {
	t.Helper()
	profile := model.Profile{ID: model.ProfileID, Name: "Test Person", Email: "test@example.com"}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}
