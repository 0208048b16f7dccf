package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the database: the super admin account, the settings and
// content singletons, and (optionally) a demo catalog.
// Usage: go run cmd/seed/main.go [-demo]
// This is a standalone CLI tool, not part of the main application
func main() {
	demo := flag.Bool("demo", false, "also seed a demo catalog")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("KK ENGINEERING SITE - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.DB.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Service{},
		&models.Enquiry{},
		&models.GalleryItem{},
		&models.Client{},
		&models.Testimonial{},
		&models.Settings{},
		&models.Content{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("Auto-migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	repository.Init(repository.NewGormRepository(config.DB, config.Pool))
	repo := repository.Get()
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Singletons; first read creates the defaults.
	if _, err := repo.GetSettings(ctx); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	for _, pageType := range models.ContentTypes {
		if _, err := repo.GetContent(ctx, pageType); err != nil {
			log.Fatalf("Failed to seed %s content: %v", pageType, err)
		}
	}
	log.Println("✓ Settings and page content seeded")

	seedSuperAdmin(repo)

	if *demo {
		seedDemoCatalog(repo)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/admin/login with email and password")
	fmt.Println()
}

func seedSuperAdmin(repo repository.DataRepository) {
	email, password, name := getAdminCredentials()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	existing, err := repo.GetAdminByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if existing != nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	}

	authService := services.GetAdminAuthService()
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}
	if err := repo.CreateAdmin(ctx, &admin); err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	fmt.Printf("✓ Super admin created: %s (%s)\n", admin.Email, admin.ID)
}

func seedDemoCatalog(repo repository.DataRepository) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := []models.Category{
		{Name: "Vibro Sifters", Slug: "vibro-sifters", Description: "Circular vibratory sieving machines"},
		{Name: "Vibrating Screens", Slug: "vibrating-screens", Description: "Linear and circular motion screens"},
		{Name: "Spare Parts", Slug: "spare-parts", Description: "Screens, gaskets and motors"},
	}
	for i := range categories {
		if err := repo.CreateCategory(ctx, &categories[i]); err != nil {
			log.Fatalf("Failed to seed category %q: %v", categories[i].Name, err)
		}
	}

	products := []models.Product{
		{
			Name:         "VS-30 Vibro Sifter",
			Slug:         "vs-30-vibro-sifter",
			Description:  "30 inch circular vibro sifter for pharmaceutical granules.",
			Category:     categories[0].Name,
			CategoryID:   &categories[0].ID,
			Availability: "In Stock",
			Featured:     true,
		},
		{
			Name:         "VS-48 Vibro Sifter",
			Slug:         "vs-48-vibro-sifter",
			Description:  "48 inch high-throughput sifter with double deck option.",
			Category:     categories[0].Name,
			CategoryID:   &categories[0].ID,
			Availability: "In Stock",
		},
		{
			Name:         "LS-1200 Linear Screen",
			Slug:         "ls-1200-linear-screen",
			Description:  "Linear motion vibrating screen for bulk solids.",
			Category:     categories[1].Name,
			CategoryID:   &categories[1].ID,
			Availability: "Out of Stock",
		},
	}
	for i := range products {
		if err := repo.CreateProduct(ctx, &products[i]); err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}

	service := models.Service{
		Title:            "Installation & Commissioning",
		Slug:             "installation-commissioning",
		Description:      "On-site installation, alignment and trial runs by our service engineers.",
		ShortDescription: "On-site installation and trial runs",
		Features:         models.StringList{"Site survey", "Alignment", "Operator training"},
		Featured:         true,
	}
	if err := repo.CreateService(ctx, &service); err != nil {
		log.Fatalf("Failed to seed service: %v", err)
	}

	fmt.Printf("✓ Demo catalog seeded: %d categories, %d products, 1 service\n", len(categories), len(products))
}

// getAdminCredentials prompts for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)

		if !services.GetAdminAuthService().ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	fmt.Println()
	return email, password, name
}
