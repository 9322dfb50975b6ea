// Package app wires configuration, database, repositories and services
// into one value the server binary and the routes share.
package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/spendview/spendview/internal/config"
	"github.com/spendview/spendview/internal/db"
	"github.com/spendview/spendview/internal/repository"
	"github.com/spendview/spendview/internal/service"
	"github.com/spendview/spendview/internal/storage"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	AuthService       *service.AuthService
	UserService       *service.UserService
	EmailService      *service.EmailService
	FileService       *service.FileService
	CategoryService   *service.CategoryService
	VideoService      *service.VideoService
	EngagementService *service.EngagementService
	ExpenseService    *service.ExpenseService
	IncomeService     *service.IncomeService
	SummaryService    *service.SummaryService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	categoryRepository := repository.NewCategoryRepository(database)
	videoRepository := repository.NewVideoRepository(database)
	likeRepository := repository.NewLikeRepository(database)
	commentRepository := repository.NewCommentRepository(database)
	reviewRepository := repository.NewReviewRepository(database)
	expenseRepository := repository.NewExpenseRepository(database)
	incomeRepository := repository.NewIncomeRepository(database)
	fileRepository := repository.NewFileRepository(database)

	// Object storage is optional; without it uploads are rejected and
	// avatar/receipt URLs come back empty.
	var fileStorage storage.Storage
	if cfg.StorageConfigured() {
		s3, err := storage.NewS3Storage(storage.S3Config{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Endpoint:      cfg.S3Endpoint,
			PresignExpiry: cfg.S3PresignExpiry,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %v", err)
		}
		fileStorage = s3
	} else {
		slog.Warn("object storage not configured, file uploads disabled")
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	fileService := service.NewFileService(fileRepository, fileStorage)
	authService := service.NewAuthService(
		userRepository,
		incomeRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository, fileService)
	categoryService := service.NewCategoryService(categoryRepository)
	videoService := service.NewVideoService(videoRepository, likeRepository, reviewRepository)
	engagementService := service.NewEngagementService(
		videoRepository,
		likeRepository,
		commentRepository,
		reviewRepository,
		userRepository,
		fileService,
	)
	expenseService := service.NewExpenseService(expenseRepository, categoryRepository, fileService)
	incomeService := service.NewIncomeService(incomeRepository)
	summaryService := service.NewSummaryService(expenseRepository)

	return &App{
		Cfg:               cfg,
		DB:                database,
		AuthService:       authService,
		UserService:       userService,
		EmailService:      emailService,
		FileService:       fileService,
		CategoryService:   categoryService,
		VideoService:      videoService,
		EngagementService: engagementService,
		ExpenseService:    expenseService,
		IncomeService:     incomeService,
		SummaryService:    summaryService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
