package app

import (
	"fmt"
	"time"

	"vraee_backend/database"
	"vraee_backend/internal/auth"
	"vraee_backend/internal/config"
	"vraee_backend/internal/email"
	"vraee_backend/internal/handlers"
	"vraee_backend/internal/logger"
	"vraee_backend/internal/middleware"
	"vraee_backend/internal/oauth"
	"vraee_backend/internal/repositories"
	"vraee_backend/internal/routes"
	"vraee_backend/internal/services"
	"vraee_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "type", cfg.Database.Type)
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := database.Seed(db); err != nil {
		logger.Fatal("Seeding failed", "error", err)
	}
	logger.Info("Database ready")

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный граф зависимостей и возвращает готовый
// gin.Engine. Вынесен отдельно от Run, чтобы тесты могли поднять
// приложение поверх своей БД.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)

	serviceContainer := initializeServices(cfg, db, tokens)
	appHandlers := initializeHandlers(cfg, serviceContainer, tokens)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, db *gorm.DB, tokens *auth.TokenManager) *services.ServiceContainer {
	var emailService email.Notifier
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPNotifier(cfg)
		logger.Info("SMTP notifier enabled", "host", cfg.Email.SMTPHost)
	} else {
		emailService = email.NoopNotifier{}
		logger.Warn("SMTP is not configured, admin notifications are disabled")
	}

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userService, tokens, emailService)
	projectService := services.NewProjectService(projectRepo, userRepo)

	return &services.ServiceContainer{
		UserService:    userService,
		AuthService:    authService,
		ProjectService: projectService,
		EmailService:   emailService,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	providers := map[string]oauth.Provider{}
	if cfg.OAuth.Google.Enabled() {
		providers["google"] = oauth.NewGoogle(cfg.OAuth.Google)
		logger.Info("OAuth provider enabled", "provider", "google")
	}
	if cfg.OAuth.LinkedIn.Enabled() {
		providers["linkedin"] = oauth.NewLinkedIn(cfg.OAuth.LinkedIn)
		logger.Info("OAuth provider enabled", "provider", "linkedin")
	}

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService, cfg, providers),
		UserHandler:    handlers.NewUserHandler(baseHandler, container.UserService, tokens),
		ProjectHandler: handlers.NewProjectHandler(baseHandler, container.ProjectService, tokens),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Frontend.URL))
	return router
}
