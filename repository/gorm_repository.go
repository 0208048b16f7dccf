package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// gormRepository is the production implementation, one GORM handle plus a
// raw pgx pool for the stats aggregation.
type gormRepository struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

// NewGormRepository wraps an already-connected database handle. The pool
// may be nil; stats then fall back to GORM queries.
func NewGormRepository(db *gorm.DB, pool *pgxpool.Pool) DataRepository {
	return &gormRepository{db: db, pool: pool}
}

// slugInUse reports whether another row of the given model owns slug.
func (r *gormRepository) slugInUse(ctx context.Context, model any, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(model).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ═══════════════════════════════════════════════════════════
// Products
// ═══════════════════════════════════════════════════════════

func (r *gormRepository) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	products := make([]models.Product, 0)
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *gormRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) CreateProduct(ctx context.Context, p *models.Product) error {
	taken, err := r.slugInUse(ctx, &models.Product{}, p.Slug, uuid.Nil)
	if err != nil {
		return err
	}
	if taken {
		return ErrSlugTaken
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gormRepository) UpdateProduct(ctx context.Context, id uuid.UUID, req models.UpdateProductRequest) (*models.Product, error) {
	p, err := r.GetProductByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	if req.Slug != nil && *req.Slug != p.Slug {
		taken, err := r.slugInUse(ctx, &models.Product{}, *req.Slug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}
	req.ApplyTo(p)
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *gormRepository) DeleteProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *gormRepository) DeleteProducts(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id IN ?", ids)
	return res.RowsAffected, res.Error
}

func (r *gormRepository) DeleteProductsByCategory(ctx context.Context, categoryName string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "category = ?", categoryName)
	return res.RowsAffected, res.Error
}

func (r *gormRepository) GetProductStats(ctx context.Context) (*models.ProductStatsResponse, error) {
	if r.pool != nil {
		return r.statsViaPgx(ctx)
	}
	return r.statsViaGorm(ctx)
}

// statsViaPgx runs the whole aggregation in one round trip.
func (r *gormRepository) statsViaPgx(ctx context.Context) (*models.ProductStatsResponse, error) {
	stats := &models.ProductStatsResponse{CategoryStats: make([]models.CategoryProductStats, 0)}

	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(category_id::text, ''),
		       category,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE availability = 'In Stock'),
		       COUNT(*) FILTER (WHERE availability = 'Out of Stock')
		FROM products
		GROUP BY 1, 2
		ORDER BY 2
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cs models.CategoryProductStats
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.TotalProducts, &cs.ActiveProducts, &cs.InactiveProducts); err != nil {
			return nil, err
		}
		stats.TotalProducts += cs.TotalProducts
		stats.ActiveProducts += cs.ActiveProducts
		stats.InactiveProducts += cs.InactiveProducts
		stats.CategoryStats = append(stats.CategoryStats, cs)
	}
	return stats, rows.Err()
}

func (r *gormRepository) statsViaGorm(ctx context.Context) (*models.ProductStatsResponse, error) {
	stats := &models.ProductStatsResponse{CategoryStats: make([]models.CategoryProductStats, 0)}

	type row struct {
		CategoryID string
		Category   string
		Total      int
		Active     int
		Inactive   int
	}
	var groups []row
	if err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select(`COALESCE(category_id::text, '') AS category_id,
			category,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE availability = 'In Stock') AS active,
			COUNT(*) FILTER (WHERE availability = 'Out of Stock') AS inactive`).
		Group("1, 2").Order("2").
		Scan(&groups).Error; err != nil {
		return nil, err
	}

	for _, g := range groups {
		stats.TotalProducts += g.Total
		stats.ActiveProducts += g.Active
		stats.InactiveProducts += g.Inactive
		stats.CategoryStats = append(stats.CategoryStats, models.CategoryProductStats{
			CategoryID:       g.CategoryID,
			CategoryName:     g.Category,
			TotalProducts:    g.Total,
			ActiveProducts:   g.Active,
			InactiveProducts: g.Inactive,
		})
	}
	return stats, nil
}
