package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// ═══════════════════════════════════════════════════════════
// Settings (singleton, get-or-create)
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// First read of an empty store: insert the defaults. The fixed
	// primary key makes a concurrent first read conflict instead of
	// creating a second document.
	def := models.DefaultSettings()
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(def).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) UpdateSettings(ctx context.Context, req models.SettingsRequest) (*models.Settings, error) {
	s, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	s.SEO = req.SEO
	s.Branding = req.Branding
	s.Company = req.Company
	s.PageHeroes = req.PageHeroes
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ═══════════════════════════════════════════════════════════
// Content (singleton per page type, get-or-create)
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetContent(ctx context.Context, pageType string) (*models.Content, error) {
	var c models.Content
	err := r.db.WithContext(ctx).First(&c, "type = ?", pageType).Error
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Unique index on type guards concurrent first reads.
	def := models.DefaultContent(pageType)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "type"}}, DoNothing: true}).
		Create(def).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&c, "type = ?", pageType).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormRepository) UpdateContent(ctx context.Context, pageType string, data models.JSONMap) (*models.Content, error) {
	c, err := r.GetContent(ctx, pageType)
	if err != nil {
		return nil, err
	}
	c.Data = data
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// ═══════════════════════════════════════════════════════════
// Admins
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *gormRepository) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}
