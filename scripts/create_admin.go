// Creates the admin account described in the admin section of
// configs/config.yaml. ADMIN_PASSWORD overrides the configured password.
//
// Usage: go run scripts/create_admin.go

package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/pkg/database"
	"ecotrack_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Cannot parse config file: %v", err)
	}
	if pw := os.Getenv("ADMIN_PASSWORD"); pw != "" {
		cfg.Admin.Password = pw
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	if email == "" || len(cfg.Admin.Password) < 6 {
		log.Fatal("admin.email and an admin password of at least 6 characters are required")
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var existing model.User
	err = db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		log.Fatalf("User %s already exists (role %s), nothing to do", email, existing.Role)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Fatalf("Lookup failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Hashing password failed: %v", err)
	}

	admin := model.User{
		Name:     cfg.Admin.Name,
		Email:    email,
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Creating admin failed: %v", err)
	}

	log.Printf("Admin %s created with id %d", email, admin.ID)
}
