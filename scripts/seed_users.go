package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/infrastructure/database"
	"github.com/careerlink-team/career-portal/internal/usecase/auth"
	"github.com/careerlink-team/career-portal/pkg/config"
)

func main() {
	log.Println("🚀 Seeding development accounts...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🗑️  Cleaning up existing seed accounts...")
	db.Where("email LIKE ?", "%@seed.local").Delete(&entities.User{})
	db.Where("email LIKE ?", "%@seed.local").Delete(&entities.Graduate{})
	db.Where("email LIKE ?", "%@seed.local").Delete(&entities.Company{})

	// Directory records for the non-admin accounts
	career := "Computer Science"
	graduate := &entities.Graduate{
		ID:     uuid.New(),
		Name:   "Seed Graduate",
		Email:  "graduate@seed.local",
		Career: &career,
	}
	if err := db.Create(graduate).Error; err != nil {
		log.Fatalf("Failed to create graduate profile: %v", err)
	}
	sector := "Technology"
	company := &entities.Company{
		ID:     uuid.New(),
		Name:   "Seed Company",
		Email:  "company@seed.local",
		Sector: &sector,
	}
	if err := db.Create(company).Error; err != nil {
		log.Fatalf("Failed to create company profile: %v", err)
	}

	seeds := []struct {
		Email     string
		Name      string
		Role      entities.UserRole
		Password  string
		ProfileID *uuid.UUID
	}{
		{Email: "admin@seed.local", Name: "Seed Admin", Role: entities.RoleAdmin, Password: "admin-password"},
		{Email: "graduate@seed.local", Name: "Seed Graduate", Role: entities.RoleGraduate, Password: "graduate-password", ProfileID: &graduate.ID},
		{Email: "company@seed.local", Name: "Seed Company", Role: entities.RoleCompany, Password: "company-password", ProfileID: &company.ID},
	}

	log.Println("🔑 Creating seed users...")
	for _, seed := range seeds {
		hash, err := auth.HashPassword(seed.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", seed.Email, err)
		}

		user := entities.NewUser(seed.Email, seed.Name, seed.Role)
		user.PasswordHash = hash
		user.ProfileID = seed.ProfileID

		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", seed.Email, err)
			continue
		}

		fmt.Printf("🟢 %-10s %s / %s\n", seed.Role, seed.Email, seed.Password)
	}

	log.Println("✅ Seed accounts created")
	log.Println("💡 Log in via POST /v1/auth/login with one of the accounts above")
	log.Println("🧹 To clean up, run: DELETE FROM users WHERE email LIKE '%@seed.local'")
}
