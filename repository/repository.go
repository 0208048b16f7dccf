package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// ErrSlugTaken is returned when a create or update would reuse a slug that
// another product/category/service already owns. A second create never
// silently overwrites the first.
var ErrSlugTaken = errors.New("slug already in use")

// DataRepository is the single gateway to the store. Handlers never touch
// the database directly. Get-by-id returns (nil, nil) for a missing id;
// delete returns whether a row existed; bulk deletes skip unknown ids and
// report how many rows actually went away. GetSettings and GetContent
// never report "not found" - they create the default document on first
// read.
type DataRepository interface {
	// Products
	GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteProducts(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteProductsByCategory(ctx context.Context, categoryName string) (int64, error)
	GetProductStats(ctx context.Context) (*models.ProductStatsResponse, error)

	// Categories
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteCategories(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Services
	GetServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, id uuid.UUID, req models.UpdateServiceRequest) (*models.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteServices(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Enquiries
	GetEnquiries(ctx context.Context, status string) ([]models.Enquiry, error)
	GetEnquiryByID(ctx context.Context, id uuid.UUID) (*models.Enquiry, error)
	CreateEnquiry(ctx context.Context, e *models.Enquiry) error
	UpdateEnquiry(ctx context.Context, id uuid.UUID, req models.UpdateEnquiryRequest) (*models.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteEnquiries(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Gallery
	GetGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	GetGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, g *models.GalleryItem) error
	UpdateGalleryItem(ctx context.Context, id uuid.UUID, req models.UpdateGalleryItemRequest) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteGalleryItems(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Clients
	GetClients(ctx context.Context) ([]models.Client, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, id uuid.UUID, req models.UpdateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteClients(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Testimonials
	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
	UpdateTestimonial(ctx context.Context, id uuid.UUID, req models.UpdateTestimonialRequest) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteTestimonials(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Singletons
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, req models.SettingsRequest) (*models.Settings, error)
	GetContent(ctx context.Context, pageType string) (*models.Content, error)
	UpdateContent(ctx context.Context, pageType string, data models.JSONMap) (*models.Content, error)

	// Admins
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, a *models.Admin) error
}

var active DataRepository

// Init installs the repository the handlers will use. main wires the
// GORM-backed one; tests and the seed CLI may wire the in-memory one.
func Init(repo DataRepository) {
	active = repo
}

// Get returns the active repository.
func Get() DataRepository {
	if active == nil {
		log.Fatal("repository not initialized - call repository.Init first")
	}
	return active
}
