package main

import (
	"log"
	"net/http"
	"os"

	_ "villavet/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"villavet/internal/auth"
	"villavet/internal/cache"
	"villavet/internal/config"
	"villavet/internal/db"
	"villavet/internal/handler"
	"villavet/internal/model"
	"villavet/internal/repository"
	"villavet/internal/router"
	"villavet/internal/service"
	"villavet/internal/storage"
)

// @title VillaVet Catalog API
// @version 1.0
// @description Storefront and admin API with product CRUD, image upload, and session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Product{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Select the image storage backend
	var imageStore storage.ImageStore
	switch cfg.UploadBackend {
	case "minio":
		minioStore, err := storage.NewMinioStore(
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatalf("minio init: %v", err)
		}
		imageStore = minioStore
	default:
		fileStore, err := storage.NewFileStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("file store init: %v", err)
		}
		imageStore = fileStore
	}

	// Initialize services
	tokenService := auth.NewTokenService(cfg.SessionSecret, cfg.SessionMaxAge)
	authService := service.NewAuthService(userRepo, tokenService)
	productService := service.NewProductService(productRepo, cacheClient)
	uploadService := service.NewUploadService(imageStore)
	statsService := service.NewStatsService(productRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionMaxAge)
	productHandler := handler.NewProductHandler(productService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		productHandler,
		uploadHandler,
		statsHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
