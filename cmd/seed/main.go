package main

import (
	"context"
	"log"
	"os"

	"villavet/internal/auth"
	"villavet/internal/config"
	"villavet/internal/db"
	"villavet/internal/model"
	"villavet/internal/repository"
	"villavet/internal/service"
)

const (
	defaultAdminEmail    = "admin@villavet.com"
	defaultAdminName     = "Administrador"
	defaultAdminPassword = "admin123"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	email := getenv("SEED_ADMIN_EMAIL", defaultAdminEmail)
	name := getenv("SEED_ADMIN_NAME", defaultAdminName)
	password := getenv("SEED_ADMIN_PASSWORD", defaultAdminPassword)

	userRepo := repository.NewUserRepository(gormDB)
	tokenService := auth.NewTokenService(cfg.SessionSecret, cfg.SessionMaxAge)
	authService := service.NewAuthService(userRepo, tokenService)

	created, err := authService.EnsureUser(context.Background(), email, name, password, "admin")
	if err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	if created {
		log.Printf("Admin user %s created", email)
	} else {
		log.Printf("Admin user %s already exists", email)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
