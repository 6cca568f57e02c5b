package app

import (
	"fmt"
	"net/http"

	"jobhunt_backend/database"
	"jobhunt_backend/internal/auth"
	"jobhunt_backend/internal/config"
	"jobhunt_backend/internal/email"
	"jobhunt_backend/internal/handlers"
	"jobhunt_backend/internal/logger"
	"jobhunt_backend/internal/middleware"
	"jobhunt_backend/internal/repositories"
	"jobhunt_backend/internal/routes"
	"jobhunt_backend/internal/services"
	"jobhunt_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not initialized yet.
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine: middleware chain, dependency wiring
// and route registration. Split from Run so tests can assemble the router
// without opening a real listener.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokenManager := auth.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.AccessTokenTTL(),
		cfg.RefreshTokenTTL(),
	)

	emailProvider := buildEmailProvider(cfg)
	appHandlers := initializeHandlers(cfg, tokenManager, emailProvider)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	ginRouter.Use(middleware.DBMiddleware(gormDB))
	ginRouter.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit.General), "general"))

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(
		ginRouter,
		appHandlers,
		middleware.AuthMiddleware(tokenManager),
		middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit.Auth), "auth"),
	)

	return ginRouter
}

func initializeHandlers(cfg *config.Config, tokenManager *auth.TokenManager, emailProvider email.Provider) *handlers.AppHandlers {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	settingsRepo := repositories.NewUserSettingsRepository()
	jobRepo := repositories.NewJobRepository()
	interviewRepo := repositories.NewInterviewRepository()

	authService := services.NewAuthService(userRepo, refreshTokenRepo, tokenManager, emailProvider, cfg.Email.WebsiteBaseURL)
	userService := services.NewUserService(userRepo, settingsRepo, refreshTokenRepo)
	jobService := services.NewJobService(jobRepo)
	interviewService := services.NewInterviewService(interviewRepo, jobRepo)

	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, authService),
		UserHandler:      handlers.NewUserHandler(base, userService),
		JobHandler:       handlers.NewJobHandler(base, jobService),
		InterviewHandler: handlers.NewInterviewHandler(base, interviewService),
	}
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	renderer := email.NewTemplateManager()
	if cfg.Email.TemplatesDir != "" {
		if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Failed to load email templates, using built-ins", "error", err, "dir", cfg.Email.TemplatesDir)
		}
	}

	smtpConfig := &email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if !smtpConfig.Configured() {
		logger.Warn("SMTP not configured, outgoing email disabled")
		return email.NewNoopProvider(renderer)
	}
	return email.NewSMTPProvider(smtpConfig, renderer)
}
