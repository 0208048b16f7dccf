package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// memoryRepository keeps everything in process-local maps. It backs the
// seed CLI's dry-run mode and the test suites; the running app always
// wires the GORM implementation. Semantics match the GORM one method for
// method, including get-or-create singletons and bulk-delete tolerance.
type memoryRepository struct {
	mu sync.RWMutex

	products     map[uuid.UUID]models.Product
	categories   map[uuid.UUID]models.Category
	services     map[uuid.UUID]models.Service
	enquiries    map[uuid.UUID]models.Enquiry
	gallery      map[uuid.UUID]models.GalleryItem
	clients      map[uuid.UUID]models.Client
	testimonials map[uuid.UUID]models.Testimonial
	admins       map[uuid.UUID]models.Admin

	settings *models.Settings
	contents map[string]models.Content
}

// NewMemoryRepository returns an empty in-memory store.
func NewMemoryRepository() DataRepository {
	return &memoryRepository{
		products:     make(map[uuid.UUID]models.Product),
		categories:   make(map[uuid.UUID]models.Category),
		services:     make(map[uuid.UUID]models.Service),
		enquiries:    make(map[uuid.UUID]models.Enquiry),
		gallery:      make(map[uuid.UUID]models.GalleryItem),
		clients:      make(map[uuid.UUID]models.Client),
		testimonials: make(map[uuid.UUID]models.Testimonial),
		admins:       make(map[uuid.UUID]models.Admin),
		contents:     make(map[string]models.Content),
	}
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ═══════════════════════════════════════════════════════════
// Products
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetProducts(_ context.Context, filter models.ProductFilter) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.CategoryID != "" && (p.CategoryID == nil || p.CategoryID.String() != filter.CategoryID) {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		if filter.Search != "" {
			q := strings.TrimSpace(filter.Search)
			if !containsFold(p.Name, q) && !containsFold(p.Description, q) && !containsFold(p.Category, q) {
				continue
			}
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	total := int64(len(matched))
	if filter.Skip > 0 {
		if filter.Skip >= len(matched) {
			matched = matched[:0]
		} else {
			matched = matched[filter.Skip:]
		}
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *memoryRepository) GetProductByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memoryRepository) GetProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) CreateProduct(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.Slug == p.Slug {
			return ErrSlugTaken
		}
	}
	if p.ID == uuid.Nil {
		p.ID = newID()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Availability == "" {
		p.Availability = models.AvailabilityInStock
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memoryRepository) UpdateProduct(_ context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	if req.Slug != nil && *req.Slug != p.Slug {
		for _, existing := range r.products {
			if existing.ID != id && existing.Slug == *req.Slug {
				return nil, ErrSlugTaken
			}
		}
	}
	req.ApplyTo(&p)
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	return &p, nil
}

func (r *memoryRepository) DeleteProduct(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *memoryRepository) DeleteProducts(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.products[id]; ok {
			delete(r.products, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memoryRepository) DeleteProductsByCategory(_ context.Context, categoryName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, p := range r.products {
		if p.Category == categoryName {
			delete(r.products, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memoryRepository) GetProductStats(_ context.Context) (*models.ProductStatsResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &models.ProductStatsResponse{CategoryStats: make([]models.CategoryProductStats, 0)}
	type key struct{ id, name string }
	groups := make(map[key]*models.CategoryProductStats)

	for _, p := range r.products {
		k := key{name: p.Category}
		if p.CategoryID != nil {
			k.id = p.CategoryID.String()
		}
		g, ok := groups[k]
		if !ok {
			g = &models.CategoryProductStats{CategoryID: k.id, CategoryName: k.name}
			groups[k] = g
		}
		g.TotalProducts++
		stats.TotalProducts++
		switch p.Availability {
		case models.AvailabilityInStock:
			g.ActiveProducts++
			stats.ActiveProducts++
		case models.AvailabilityOutOfStock:
			g.InactiveProducts++
			stats.InactiveProducts++
		}
	}

	for _, g := range groups {
		stats.CategoryStats = append(stats.CategoryStats, *g)
	}
	sort.Slice(stats.CategoryStats, func(i, j int) bool {
		return stats.CategoryStats[i].CategoryName < stats.CategoryStats[j].CategoryName
	})
	return stats, nil
}

// ═══════════════════════════════════════════════════════════
// Categories
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetCategories(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	categories := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *memoryRepository) GetCategoryByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateCategory(_ context.Context, c *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Slug == c.Slug {
			return ErrSlugTaken
		}
	}
	if c.ID == uuid.Nil {
		c.ID = newID()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.categories[c.ID] = *c
	return nil
}

func (r *memoryRepository) UpdateCategory(_ context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	if req.Slug != nil && *req.Slug != c.Slug {
		for _, existing := range r.categories {
			if existing.ID != id && existing.Slug == *req.Slug {
				return nil, ErrSlugTaken
			}
		}
	}
	req.ApplyTo(&c)
	c.UpdatedAt = time.Now().UTC()
	r.categories[id] = c
	return &c, nil
}

func (r *memoryRepository) DeleteCategory(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

func (r *memoryRepository) DeleteCategories(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.categories[id]; ok {
			delete(r.categories, id)
			deleted++
		}
	}
	return deleted, nil
}

// ═══════════════════════════════════════════════════════════
// Services
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetServices(_ context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	services := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		services = append(services, s)
	}
	sort.Slice(services, func(i, j int) bool {
		if !services[i].CreatedAt.Equal(services[j].CreatedAt) {
			return services[i].CreatedAt.Before(services[j].CreatedAt)
		}
		return services[i].ID.String() < services[j].ID.String()
	})
	return services, nil
}

func (r *memoryRepository) GetServiceByID(_ context.Context, id uuid.UUID) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.services[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateService(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.services {
		if existing.Slug == s.Slug {
			return ErrSlugTaken
		}
	}
	if s.ID == uuid.Nil {
		s.ID = newID()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Features == nil {
		s.Features = models.StringList{}
	}
	r.services[s.ID] = *s
	return nil
}

func (r *memoryRepository) UpdateService(_ context.Context, id uuid.UUID, req models.UpdateServiceRequest) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	if req.Slug != nil && *req.Slug != s.Slug {
		for _, existing := range r.services {
			if existing.ID != id && existing.Slug == *req.Slug {
				return nil, ErrSlugTaken
			}
		}
	}
	req.ApplyTo(&s)
	s.UpdatedAt = time.Now().UTC()
	r.services[id] = s
	return &s, nil
}

func (r *memoryRepository) DeleteService(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return false, nil
	}
	delete(r.services, id)
	return true, nil
}

func (r *memoryRepository) DeleteServices(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.services[id]; ok {
			delete(r.services, id)
			deleted++
		}
	}
	return deleted, nil
}

// ═══════════════════════════════════════════════════════════
// Enquiries
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetEnquiries(_ context.Context, status string) ([]models.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	enquiries := make([]models.Enquiry, 0, len(r.enquiries))
	for _, e := range r.enquiries {
		if status != "" && e.Status != status {
			continue
		}
		enquiries = append(enquiries, e)
	}
	sort.Slice(enquiries, func(i, j int) bool {
		if !enquiries[i].CreatedAt.Equal(enquiries[j].CreatedAt) {
			return enquiries[i].CreatedAt.After(enquiries[j].CreatedAt)
		}
		return enquiries[i].ID.String() > enquiries[j].ID.String()
	})
	return enquiries, nil
}

func (r *memoryRepository) GetEnquiryByID(_ context.Context, id uuid.UUID) (*models.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.enquiries[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateEnquiry(_ context.Context, e *models.Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = newID()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Type == "" {
		e.Type = models.EnquiryTypeGeneral
	}
	if e.Status == "" {
		e.Status = models.EnquiryStatusPending
	}
	r.enquiries[e.ID] = *e
	return nil
}

func (r *memoryRepository) UpdateEnquiry(_ context.Context, id uuid.UUID, req models.UpdateEnquiryRequest) (*models.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.enquiries[id]
	if !ok {
		return nil, nil
	}
	req.ApplyTo(&e)
	e.UpdatedAt = time.Now().UTC()
	r.enquiries[id] = e
	return &e, nil
}

func (r *memoryRepository) DeleteEnquiry(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.enquiries[id]; !ok {
		return false, nil
	}
	delete(r.enquiries, id)
	return true, nil
}

func (r *memoryRepository) DeleteEnquiries(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.enquiries[id]; ok {
			delete(r.enquiries, id)
			deleted++
		}
	}
	return deleted, nil
}

// ═══════════════════════════════════════════════════════════
// Gallery
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetGalleryItems(_ context.Context) ([]models.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]models.GalleryItem, 0, len(r.gallery))
	for _, g := range r.gallery {
		items = append(items, g)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (r *memoryRepository) GetGalleryItemByID(_ context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if g, ok := r.gallery[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateGalleryItem(_ context.Context, g *models.GalleryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g.ID == uuid.Nil {
		g.ID = newID()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	r.gallery[g.ID] = *g
	return nil
}

func (r *memoryRepository) UpdateGalleryItem(_ context.Context, id uuid.UUID, req models.UpdateGalleryItemRequest) (*models.GalleryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.gallery[id]
	if !ok {
		return nil, nil
	}
	req.ApplyTo(&g)
	g.UpdatedAt = time.Now().UTC()
	r.gallery[id] = g
	return &g, nil
}

func (r *memoryRepository) DeleteGalleryItem(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gallery[id]; !ok {
		return false, nil
	}
	delete(r.gallery, id)
	return true, nil
}

func (r *memoryRepository) DeleteGalleryItems(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.gallery[id]; ok {
			delete(r.gallery, id)
			deleted++
		}
	}
	return deleted, nil
}

// ═══════════════════════════════════════════════════════════
// Clients
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetClients(_ context.Context) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Order != clients[j].Order {
			return clients[i].Order < clients[j].Order
		}
		return clients[i].CreatedAt.Before(clients[j].CreatedAt)
	})
	return clients, nil
}

func (r *memoryRepository) GetClientByID(_ context.Context, id uuid.UUID) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateClient(_ context.Context, c *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = newID()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.clients[c.ID] = *c
	return nil
}

func (r *memoryRepository) UpdateClient(_ context.Context, id uuid.UUID, req models.UpdateClientRequest) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	req.ApplyTo(&c)
	c.UpdatedAt = time.Now().UTC()
	r.clients[id] = c
	return &c, nil
}

func (r *memoryRepository) DeleteClient(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

func (r *memoryRepository) DeleteClients(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.clients[id]; ok {
			delete(r.clients, id)
			deleted++
		}
	}
	return deleted, nil
}

// ═══════════════════════════════════════════════════════════
// Testimonials
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetTestimonials(_ context.Context) ([]models.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	testimonials := make([]models.Testimonial, 0, len(r.testimonials))
	for _, t := range r.testimonials {
		testimonials = append(testimonials, t)
	}
	sort.Slice(testimonials, func(i, j int) bool {
		if !testimonials[i].CreatedAt.Equal(testimonials[j].CreatedAt) {
			return testimonials[i].CreatedAt.After(testimonials[j].CreatedAt)
		}
		return testimonials[i].ID.String() > testimonials[j].ID.String()
	})
	return testimonials, nil
}

func (r *memoryRepository) GetTestimonialByID(_ context.Context, id uuid.UUID) (*models.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.testimonials[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateTestimonial(_ context.Context, t *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = newID()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Rating == 0 {
		t.Rating = 5
	}
	r.testimonials[t.ID] = *t
	return nil
}

func (r *memoryRepository) UpdateTestimonial(_ context.Context, id uuid.UUID, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.testimonials[id]
	if !ok {
		return nil, nil
	}
	req.ApplyTo(&t)
	t.UpdatedAt = time.Now().UTC()
	r.testimonials[id] = t
	return &t, nil
}

func (r *memoryRepository) DeleteTestimonial(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.testimonials[id]; !ok {
		return false, nil
	}
	delete(r.testimonials, id)
	return true, nil
}

func (r *memoryRepository) DeleteTestimonials(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range ids {
		if _, ok := r.testimonials[id]; ok {
			delete(r.testimonials, id)
			deleted++
		}
	}
	return deleted, nil
}

// ═══════════════════════════════════════════════════════════
// Singletons
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetSettings(_ context.Context) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		def := models.DefaultSettings()
		now := time.Now().UTC()
		def.CreatedAt = now
		def.UpdatedAt = now
		r.settings = def
	}
	s := *r.settings
	return &s, nil
}

func (r *memoryRepository) UpdateSettings(ctx context.Context, req models.SettingsRequest) (*models.Settings, error) {
	if _, err := r.GetSettings(ctx); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.SEO = req.SEO
	r.settings.Branding = req.Branding
	r.settings.Company = req.Company
	r.settings.PageHeroes = req.PageHeroes
	r.settings.UpdatedAt = time.Now().UTC()
	s := *r.settings
	return &s, nil
}

func (r *memoryRepository) GetContent(_ context.Context, pageType string) (*models.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.contents[pageType]; ok {
		return &c, nil
	}
	def := models.DefaultContent(pageType)
	def.ID = newID()
	now := time.Now().UTC()
	def.CreatedAt = now
	def.UpdatedAt = now
	r.contents[pageType] = *def
	c := *def
	return &c, nil
}

func (r *memoryRepository) UpdateContent(ctx context.Context, pageType string, data models.JSONMap) (*models.Content, error) {
	if _, err := r.GetContent(ctx, pageType); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.contents[pageType]
	c.Data = data
	c.UpdatedAt = time.Now().UTC()
	r.contents[pageType] = c
	return &c, nil
}

// ═══════════════════════════════════════════════════════════
// Admins
// ═══════════════════════════════════════════════════════════

func (r *memoryRepository) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) CreateAdmin(_ context.Context, a *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = newID()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Role == "" {
		a.Role = "admin"
	}
	if a.Status == "" {
		a.Status = "active"
	}
	r.admins[a.ID] = *a
	return nil
}
