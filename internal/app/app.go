package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"inspirahub/database"
	"inspirahub/internal/auth"
	"inspirahub/internal/config"
	"inspirahub/internal/email"
	"inspirahub/internal/handlers"
	"inspirahub/internal/logger"
	"inspirahub/internal/middleware"
	"inspirahub/internal/models"
	"inspirahub/internal/repositories"
	"inspirahub/internal/routes"
	"inspirahub/internal/services"
	"inspirahub/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run собирает и запускает приложение. Блокируется до SIGINT/SIGTERM,
// после чего гасит фоновую чистку и HTTP-сервер.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	// Контекст, который отменяется сигналом остановки
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, worker := SetupRouter(cfg, gormDB)
	worker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает gin-роутер и фоновую чистку кодов сброса.
// Вынесен отдельно, чтобы тесты могли поднять роутер без Run().
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *workers.ResetTokenWorker) {
	tokens := auth.NewTokenManager(cfg.JWT)

	emailProvider := buildEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	contentRepo := repositories.NewContentRepository(gormDB)
	commentRepo := repositories.NewCommentRepository(gormDB)
	resetRepo := repositories.NewResetTokenRepository(gormDB)

	container := &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, resetRepo, emailProvider, tokens, cfg.Reset.CodeTTL()),
		UserService:    services.NewUserService(userRepo),
		ContentService: services.NewContentService(contentRepo),
		CommentService: services.NewCommentService(commentRepo, contentRepo),
	}

	appHandlers := handlers.NewAppHandlers(container, tokens)

	router := initializeGinRouter(cfg.Server.Env)
	routes.RegisterRoutes(router, appHandlers)

	sweeper := workers.NewResetTokenWorker(resetRepo, cfg.Reset.SweepInterval(), cfg.Reset.CodeTTL())

	return router, sweeper
}

// buildEmailProvider возвращает SMTP-отправитель, если он настроен,
// иначе - no-op заглушку для локальных запусков.
func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured. Emails will not be sent.")
		return &NoopEmailProvider{}
	}

	provider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUser:     cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}

	logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

func initializeGinRouter(env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого админа из окружения.
// Обычная регистрация админов не создает.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("LOWER(email) = LOWER(?)", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Name:         "Admin",
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
