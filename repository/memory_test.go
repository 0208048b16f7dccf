package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

func strPtr(s string) *string { return &s }

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	p := models.Product{
		Name:     "VS-30 Vibro Sifter",
		Slug:     "vs-30-vibro-sifter",
		Category: "Vibro Sifters",
	}
	require.NoError(t, repo.CreateProduct(ctx, &p))
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, models.AvailabilityInStock, p.Availability, "availability defaults on create")

	got, err := repo.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)

	bySlug, err := repo.GetProductBySlug(ctx, "vs-30-vibro-sifter")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, p.ID, bySlug.ID)

	// Missing id reads as (nil, nil), not an error.
	missing, err := repo.GetProductByID(ctx, uuid.Must(uuid.NewV7()))
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := repo.UpdateProduct(ctx, p.ID, models.UpdateProductRequest{
		Description: strPtr("Circular vibratory sieving machine"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Circular vibratory sieving machine", updated.Description)
	assert.Equal(t, p.Name, updated.Name, "fields not in the request stay untouched")

	deleted, err := repo.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete reports nothing removed")
}

func TestProductSlugUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := models.Product{Name: "First", Slug: "shared-slug", Category: "Screens"}
	require.NoError(t, repo.CreateProduct(ctx, &first))

	second := models.Product{Name: "Second", Slug: "shared-slug", Category: "Screens"}
	err := repo.CreateProduct(ctx, &second)
	assert.ErrorIs(t, err, ErrSlugTaken)

	// A distinct product cannot move onto the taken slug either.
	third := models.Product{Name: "Third", Slug: "other-slug", Category: "Screens"}
	require.NoError(t, repo.CreateProduct(ctx, &third))
	_, err = repo.UpdateProduct(ctx, third.ID, models.UpdateProductRequest{Slug: strPtr("shared-slug")})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// Re-submitting its own slug is not a conflict.
	same, err := repo.UpdateProduct(ctx, third.ID, models.UpdateProductRequest{Slug: strPtr("other-slug")})
	require.NoError(t, err)
	require.NotNil(t, same)
}

func TestProductFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	featured := true
	seed := []models.Product{
		{Name: "VS-30 Sifter", Slug: "vs-30", Category: "Vibro Sifters", Featured: true},
		{Name: "VS-48 Sifter", Slug: "vs-48", Category: "Vibro Sifters"},
		{Name: "LS-1200 Screen", Slug: "ls-1200", Category: "Vibrating Screens", Description: "linear motion"},
	}
	for i := range seed {
		require.NoError(t, repo.CreateProduct(ctx, &seed[i]))
	}

	byCategory, total, err := repo.GetProducts(ctx, models.ProductFilter{Category: "Vibro Sifters"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)
	assert.EqualValues(t, 2, total)

	bySearch, _, err := repo.GetProducts(ctx, models.ProductFilter{Search: "LINEAR"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "ls-1200", bySearch[0].Slug)

	byFeatured, _, err := repo.GetProducts(ctx, models.ProductFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, byFeatured, 1)
	assert.Equal(t, "vs-30", byFeatured[0].Slug)

	paged, total, err := repo.GetProducts(ctx, models.ProductFilter{Limit: 2, Skip: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
	assert.EqualValues(t, 3, total, "total counts matches before paging")
}

func TestBulkDeleteSkipsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	p := models.Product{Name: "Keeper", Slug: "keeper", Category: "Screens"}
	require.NoError(t, repo.CreateProduct(ctx, &p))

	deleted, err := repo.DeleteProducts(ctx, []uuid.UUID{p.ID, uuid.Must(uuid.NewV7())})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, total, err := repo.GetProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestDeleteProductsByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, p := range []models.Product{
		{Name: "A", Slug: "a", Category: "Spare Parts"},
		{Name: "B", Slug: "b", Category: "Spare Parts"},
		{Name: "C", Slug: "c", Category: "Spare Parts"},
		{Name: "D", Slug: "d", Category: "Screens"},
	} {
		q := p
		require.NoError(t, repo.CreateProduct(ctx, &q))
	}

	deleted, err := repo.DeleteProductsByCategory(ctx, "Spare Parts")
	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)

	_, total, err := repo.GetProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestProductStats(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	catID := uuid.Must(uuid.NewV7())
	for _, p := range []models.Product{
		{Name: "A", Slug: "a", Category: "Sifters", CategoryID: &catID, Availability: models.AvailabilityInStock},
		{Name: "B", Slug: "b", Category: "Sifters", CategoryID: &catID, Availability: models.AvailabilityOutOfStock},
		{Name: "C", Slug: "c", Category: "Screens", Availability: models.AvailabilityInStock},
	} {
		q := p
		require.NoError(t, repo.CreateProduct(ctx, &q))
	}

	stats, err := repo.GetProductStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 1, stats.InactiveProducts)
	require.Len(t, stats.CategoryStats, 2)

	// Sorted by category name.
	assert.Equal(t, "Screens", stats.CategoryStats[0].CategoryName)
	assert.Equal(t, "Sifters", stats.CategoryStats[1].CategoryName)
	assert.Equal(t, catID.String(), stats.CategoryStats[1].CategoryID)
	assert.Equal(t, 2, stats.CategoryStats[1].TotalProducts)
	assert.Equal(t, 1, stats.CategoryStats[1].ActiveProducts)
	assert.Equal(t, 1, stats.CategoryStats[1].InactiveProducts)
}

func TestEnquiryStatusFilterAndDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	e1 := models.Enquiry{Name: "Ramesh", Email: "ramesh@example.com"}
	require.NoError(t, repo.CreateEnquiry(ctx, &e1))
	assert.Equal(t, models.EnquiryStatusPending, e1.Status)
	assert.Equal(t, models.EnquiryTypeGeneral, e1.Type)

	e2 := models.Enquiry{Name: "Suresh", Email: "suresh@example.com", Status: models.EnquiryStatusResolved}
	require.NoError(t, repo.CreateEnquiry(ctx, &e2))

	pending, err := repo.GetEnquiries(ctx, models.EnquiryStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, e1.ID, pending[0].ID)

	all, err := repo.GetEnquiries(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Any status transition is allowed, including resolved back to pending.
	back, err := repo.UpdateEnquiry(ctx, e2.ID, models.UpdateEnquiryRequest{Status: strPtr(models.EnquiryStatusPending)})
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, models.EnquiryStatusPending, back.Status)
}

func TestGalleryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	later := models.GalleryItem{Name: "Second", Image: "b.jpg", Order: 2}
	first := models.GalleryItem{Name: "First", Image: "a.jpg", Order: 1}
	require.NoError(t, repo.CreateGalleryItem(ctx, &later))
	require.NoError(t, repo.CreateGalleryItem(ctx, &first))

	items, err := repo.GetGalleryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Name, "sorted by display order, not insertion")
}

func TestSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	s1, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, s1, "first read creates the defaults")
	assert.Equal(t, models.SettingsSingletonID, s1.ID)
	assert.NotEmpty(t, s1.Company.Name)

	s2, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, s1.ID, s2.ID, "second read returns the same document")

	req := models.SettingsRequest{
		SEO:     models.SeoSettings{Title: "New Title"},
		Company: models.CompanySettings{Name: "KK Engineering Pvt Ltd"},
	}
	updated, err := repo.UpdateSettings(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.SEO.Title)
	assert.Equal(t, "KK Engineering Pvt Ltd", updated.Company.Name)

	s3, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New Title", s3.SEO.Title, "update persists across reads")
}

func TestContentPerTypeSingleton(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	home, err := repo.GetContent(ctx, models.ContentTypeHome)
	require.NoError(t, err)
	require.NotNil(t, home)
	assert.Equal(t, models.ContentTypeHome, home.Type)
	assert.NotEmpty(t, home.Data)

	about, err := repo.GetContent(ctx, models.ContentTypeAbout)
	require.NoError(t, err)
	assert.NotEqual(t, home.ID, about.ID, "each page type owns its own document")

	updated, err := repo.UpdateContent(ctx, models.ContentTypeHome, models.JSONMap{"headline": "Built to sieve"})
	require.NoError(t, err)
	assert.Equal(t, "Built to sieve", updated.Data["headline"])

	again, err := repo.GetContent(ctx, models.ContentTypeHome)
	require.NoError(t, err)
	assert.Equal(t, home.ID, again.ID)
	assert.Equal(t, "Built to sieve", again.Data["headline"])
}

func TestAdminLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	a := models.Admin{Email: "admin@kkengineering.in", Name: "Admin", PasswordHash: "x"}
	require.NoError(t, repo.CreateAdmin(ctx, &a))
	assert.Equal(t, "admin", a.Role)
	assert.Equal(t, "active", a.Status)

	found, err := repo.GetAdminByEmail(ctx, "admin@kkengineering.in")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, a.ID, found.ID)

	none, err := repo.GetAdminByEmail(ctx, "nobody@kkengineering.in")
	require.NoError(t, err)
	assert.Nil(t, none)
}
