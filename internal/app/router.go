package app

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/abidnoul/portfolio/internal/config"
	"github.com/abidnoul/portfolio/internal/middleware"
	"github.com/abidnoul/portfolio/internal/model"
	"github.com/abidnoul/portfolio/internal/repository"
	"github.com/abidnoul/portfolio/internal/service"
	"github.com/abidnoul/portfolio/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	// Set Gin mode
	if cfg.ServerPort == "8080" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := InitDB(cfg)
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	// Auto migrate
	if err := Migrate(db); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// Initialize Redis with retry logic (optional)
	var redisClient *util.RedisClient
	if cfg.RedisHost != "" {
		redisClient = initRedisWithRetry(cfg)
	}

	// Initialize RabbitMQ (optional)
	var rabbitMQ *util.RabbitMQClient
	if cfg.RabbitMQURL != "" {
		rabbitMQ = initRabbitMQWithRetry(cfg)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db, redisClient)
	skillRepo := repository.NewSkillCategoryRepository(db, redisClient)
	educationRepo := repository.NewEducationRepository(db)
	projectRepo := repository.NewProjectRepository(db, redisClient)
	serviceRepo := repository.NewServiceRepository(db, redisClient)
	contactRepo := repository.NewContactRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	// Initialize services
	pageService := service.NewPageService(profileRepo, skillRepo, educationRepo, projectRepo, serviceRepo)
	contactService := service.NewContactService(contactRepo, rabbitMQ)
	blogService := service.NewBlogService(blogRepo, profileRepo, cfg.BlogShowDrafts)
	projectService := service.NewProjectService(projectRepo)
	authService := service.NewAuthService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
	emailService := service.NewEmailService(cfg)

	// Start email worker if RabbitMQ is available
	if rabbitMQ != nil {
		emailWorker := service.NewEmailWorker(emailService, rabbitMQ)
		if err := emailWorker.Start(); err != nil {
			log.Printf("Warning: Failed to start email worker: %v", err)
		} else {
			log.Println("Email worker started successfully")
		}
	} else {
		log.Println("Email worker not started - RabbitMQ not configured")
	}

	// Initialize handlers
	pageHandler := NewPageHandler(pageService)
	contactHandler := NewContactHandler(contactService, pageService)
	skillsAPIHandler := NewSkillsAPIHandler(pageService)
	blogHandler := NewBlogHandler(blogService)
	authHandler := NewAuthHandler(authService, cfg.JWTSecret)
	adminHandler := NewAdminHandler(contactService, blogService, projectService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(corsMiddleware(cfg.ClientURL))

	// Rate limiting middleware (if enabled)
	if cfg.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		r.Use(rateLimiter.Middleware())
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// Single request-boundary failure handler for every route
	r.Use(middleware.ErrorBoundary())

	// Server-side templates
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	RegisterRoutes(r, cfg, pageHandler, contactHandler, skillsAPIHandler, blogHandler, authHandler, adminHandler)

	return r
}

// RegisterRoutes wires every route onto the engine. Split from NewRouter so
// tests can mount handlers on an engine with their own database.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	pageHandler *PageHandler,
	contactHandler *ContactHandler,
	skillsAPIHandler *SkillsAPIHandler,
	blogHandler *BlogHandler,
	authHandler *AuthHandler,
	adminHandler *AdminHandler,
) {
	// Portfolio pages
	r.GET("/", pageHandler.Home)
	r.GET("/about", pageHandler.About)
	r.GET("/skills", pageHandler.Skills)
	r.GET("/projects", pageHandler.Projects)
	r.GET("/projects/:id", pageHandler.ProjectDetail)
	r.GET("/services", pageHandler.Services)

	// Contact form
	r.GET("/contact", contactHandler.ShowForm)
	r.POST("/contact", contactHandler.Submit)

	// Blog
	r.GET("/blogs", blogHandler.List)
	r.GET("/blogs/:slug", blogHandler.Detail)

	// Skills API
	r.GET("/api/skills", skillsAPIHandler.Get)

	// robots.txt references the sitemap location
	r.GET("/robots.txt", robotsTxt(cfg))

	// Admin API
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		admin := api.Group("/admin")
		admin.Use(authHandler.AuthMiddleware())
		{
			admin.GET("/contacts", adminHandler.ListContacts)
			admin.PUT("/contacts/:id/responded", adminHandler.SetContactResponded)

			admin.POST("/blogs", adminHandler.CreateBlog)
			admin.PUT("/blogs/:id", adminHandler.UpdateBlog)
			admin.DELETE("/blogs/:id", adminHandler.DeleteBlog)

			admin.POST("/projects", adminHandler.CreateProject)
			admin.PUT("/projects/:id", adminHandler.UpdateProject)
			admin.DELETE("/projects/:id", adminHandler.DeleteProject)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// InitDB opens the database selected by configuration: postgres in
// production, sqlite for local development.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "host=" + cfg.PostgresHost +
			" port=" + cfg.PostgresPort +
			" user=" + cfg.PostgresUser +
			" password=" + cfg.PostgresPassword +
			" dbname=" + cfg.PostgresDB +
			" sslmode=" + cfg.PostgresSSLMode
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Profile{},
		&model.SkillCategory{},
		&model.Skill{},
		&model.Education{},
		&model.Project{},
		&model.Service{},
		&model.Contact{},
		&model.Blog{},
	)
}

// initRedisWithRetry attempts to connect to Redis with exponential backoff retry
func initRedisWithRetry(cfg *config.Config) *util.RedisClient {
	maxRetries := 5
	initialDelay := 2 * time.Second
	maxDelay := 30 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		redisClient, err := util.NewRedisClient(cfg)
		if err == nil {
			log.Printf("Redis connected successfully on attempt %d", attempt)
			return redisClient
		}

		if attempt < maxRetries {
			delay := initialDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxDelay {
				delay = maxDelay
			}

			log.Printf("Failed to connect to Redis (attempt %d/%d): %v. Retrying in %v...", attempt, maxRetries, err, delay)
			time.Sleep(delay)
		} else {
			log.Printf("Warning: Failed to connect to Redis after %d attempts: %v. Caching will be disabled.", maxRetries, err)
		}
	}

	return nil
}

// initRabbitMQWithRetry attempts to connect to RabbitMQ with exponential backoff retry
func initRabbitMQWithRetry(cfg *config.Config) *util.RabbitMQClient {
	maxRetries := 5
	initialDelay := 2 * time.Second
	maxDelay := 30 * time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		rabbitMQ, err := util.NewRabbitMQClient(cfg)
		if err == nil {
			log.Printf("RabbitMQ connected successfully on attempt %d", attempt)
			return rabbitMQ
		}

		if attempt < maxRetries {
			delay := initialDelay * time.Duration(1<<uint(attempt-1))
			if delay > maxDelay {
				delay = maxDelay
			}

			log.Printf("Failed to connect to RabbitMQ (attempt %d/%d): %v. Retrying in %v...", attempt, maxRetries, err, delay)
			time.Sleep(delay)
		} else {
			log.Printf("Warning: Failed to connect to RabbitMQ after %d attempts: %v. Contact notifications will be disabled.", maxRetries, err)
		}
	}

	return nil
}

// robotsTxt serves the crawler policy with a pointer to the sitemap.
func robotsTxt(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		siteURL := cfg.SiteURL
		if siteURL == "" {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			siteURL = fmt.Sprintf("%s://%s", scheme, c.Request.Host)
		}

		content := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/v1/admin/\n\nSitemap: %s/sitemap.xml", siteURL)
		c.String(http.StatusOK, content)
	}
}

func corsMiddleware(clientURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin == clientURL {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", clientURL)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
