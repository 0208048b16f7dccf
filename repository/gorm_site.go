package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// ═══════════════════════════════════════════════════════════
// Enquiries
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetEnquiries(ctx context.Context, status string) ([]models.Enquiry, error) {
	query := r.db.WithContext(ctx).Model(&models.Enquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	enquiries := make([]models.Enquiry, 0)
	err := query.Order("created_at DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *gormRepository) GetEnquiryByID(ctx context.Context, id uuid.UUID) (*models.Enquiry, error) {
	var e models.Enquiry
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository) CreateEnquiry(ctx context.Context, e *models.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *gormRepository) UpdateEnquiry(ctx context.Context, id uuid.UUID, req models.UpdateEnquiryRequest) (*models.Enquiry, error) {
	e, err := r.GetEnquiryByID(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	req.ApplyTo(e)
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (r *gormRepository) DeleteEnquiry(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Enquiry{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteEnquiries(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Enquiry{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

// ═══════════════════════════════════════════════════════════
// Gallery
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	items := make([]models.GalleryItem, 0)
	err := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC").Find(&items).Error
	return items, err
}

func (r *gormRepository) GetGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	var g models.GalleryItem
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *gormRepository) CreateGalleryItem(ctx context.Context, g *models.GalleryItem) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gormRepository) UpdateGalleryItem(ctx context.Context, id uuid.UUID, req models.UpdateGalleryItemRequest) (*models.GalleryItem, error) {
	g, err := r.GetGalleryItemByID(ctx, id)
	if err != nil || g == nil {
		return nil, err
	}
	req.ApplyTo(g)
	if err := r.db.WithContext(ctx).Save(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (r *gormRepository) DeleteGalleryItem(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteGalleryItems(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

// ═══════════════════════════════════════════════════════════
// Clients
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetClients(ctx context.Context) ([]models.Client, error) {
	clients := make([]models.Client, 0)
	err := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC").Find(&clients).Error
	return clients, err
}

func (r *gormRepository) GetClientByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *gormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormRepository) UpdateClient(ctx context.Context, id uuid.UUID, req models.UpdateClientRequest) (*models.Client, error) {
	c, err := r.GetClientByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	req.ApplyTo(c)
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *gormRepository) DeleteClient(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteClients(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

// ═══════════════════════════════════════════════════════════
// Testimonials
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials := make([]models.Testimonial, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *gormRepository) GetTestimonialByID(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *gormRepository) UpdateTestimonial(ctx context.Context, id uuid.UUID, req models.UpdateTestimonialRequest) (*models.Testimonial, error) {
	t, err := r.GetTestimonialByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	req.ApplyTo(t)
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *gormRepository) DeleteTestimonial(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteTestimonials(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Testimonial{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}
