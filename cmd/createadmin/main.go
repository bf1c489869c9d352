// Command createadmin bootstraps the first admin account from the
// ADMIN_NAME, ADMIN_EMAIL and ADMIN_PASSWORD environment variables.
// It exits cleanly when the account already exists.
package main

import (
	"context"
	"log"
	"time"

	"github.com/amzproperties/amz-backend/internal/apperrors"
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/models"
	mongorepo "github.com/amzproperties/amz-backend/internal/repositories/mongodb"
	"github.com/amzproperties/amz-backend/internal/utils"
	"github.com/amzproperties/amz-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	client, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminRepo := mongorepo.NewAdminRepository(client.Database(cfg.MongoDB.Database))
	if err = adminRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	if _, err = adminRepo.FindByEmail(ctx, cfg.Admin.Email); err == nil {
		log.Printf("Admin %s already exists, nothing to do", cfg.Admin.Email)
		return
	} else if err != apperrors.ErrNotFound {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	hashed, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     "admin",
		IsActive: true,
	}
	if err = adminRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created", admin.Email)
}
