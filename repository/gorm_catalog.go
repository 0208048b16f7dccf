package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// ═══════════════════════════════════════════════════════════
// Categories
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *gormRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *gormRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	taken, err := r.slugInUse(ctx, &models.Category{}, c.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}
	return r.db.WithContext(ctx).Create(c).Error
}

// UpdateCategory renames the category row only. Products keep whatever
// denormalized name they were written with; there is no cascade.
func (r *gormRepository) UpdateCategory(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (*models.Category, error) {
	c, err := r.GetCategoryByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	if req.Slug != nil && *req.Slug != c.Slug {
		taken, err := r.slugInUse(ctx, &models.Category{}, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}
	req.ApplyTo(c)
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *gormRepository) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteCategories(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

// ═══════════════════════════════════════════════════════════
// Services
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetServices(ctx context.Context) ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&services).Error
	return services, err
}

func (r *gormRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) CreateService(ctx context.Context, s *models.Service) error {
	taken, err := r.slugInUse(ctx, &models.Service{}, s.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *gormRepository) UpdateService(ctx context.Context, id uuid.UUID, req models.UpdateServiceRequest) (*models.Service, error) {
	s, err := r.GetServiceByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	if req.Slug != nil && *req.Slug != s.Slug {
		taken, err := r.slugInUse(ctx, &models.Service{}, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}
	req.ApplyTo(s)
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *gormRepository) DeleteService(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteServices(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}
