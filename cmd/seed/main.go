package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/primehood/supplies-api/internal/config"
	"github.com/primehood/supplies-api/internal/database"
	"github.com/primehood/supplies-api/internal/models"
	"github.com/primehood/supplies-api/internal/repository"
	"github.com/primehood/supplies-api/internal/service"
)

// main seeds the database with the admin account, categories, and a
// representative catalog. All writes are idempotent upserts.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db, cfg.SearchCaseSensitive)

	// 1. Admin user
	hash, err := service.HashPassword(getSeedPassword())
	if err != nil {
		log.Fatal().Err(err).Msg("password hash failed")
	}
	admin := &models.User{
		Email:        "admin@primehood.co.ke",
		PasswordHash: hash,
		Name:         "FG Kibe",
		Role:         models.RoleAdmin,
	}
	if err := userRepo.Upsert(admin); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	log.Info().Str("email", admin.Email).Msg("admin user seeded")

	// 2. Categories
	categoryIDs := map[string]int{}
	for _, cat := range seedCategories {
		c := cat
		if err := categoryRepo.Upsert(&c); err != nil {
			log.Fatal().Err(err).Str("slug", c.Slug).Msg("category seed failed")
		}
		categoryIDs[c.Slug] = c.ID
	}
	log.Info().Int("count", len(seedCategories)).Msg("categories seeded")

	// 3. Products
	for _, sp := range seedProducts {
		p := sp.product
		p.CategoryID = categoryIDs[sp.categorySlug]
		if err := productRepo.Upsert(&p); err != nil {
			log.Fatal().Err(err).Str("slug", p.Slug).Msg("product seed failed")
		}
	}
	log.Info().Int("count", len(seedProducts)).Msg("products seeded")

	// 4. Sample customer and order
	if err := seedSampleOrder(db); err != nil {
		log.Fatal().Err(err).Msg("sample order seed failed")
	}
	log.Info().Msg("database seeded successfully")
}

// getSeedPassword reads the admin password from env with a development
// fallback.
func getSeedPassword() string {
	if v := os.Getenv("SEED_ADMIN_PASSWORD"); v != "" {
		return v
	}
	return "Admin@2026!"
}
