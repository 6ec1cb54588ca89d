package repo

import (
	"context"
	"strings"

	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/transport"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts applies the optional filters as a pure AND of predicates.
// Ties under every sort key are broken by row id so the ordering is total.
func (r *GormRepo) ListProducts(ctx context.Context, f transport.ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		q = q.Where("lower(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	switch f.Sort {
	case transport.SortPriceAsc:
		q = q.Order("price ASC").Order("id ASC")
	case transport.SortPriceDesc:
		q = q.Order("price DESC").Order("id ASC")
	default:
		q = q.Order("created_at DESC").Order("id DESC")
	}

	var items []models.Product
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
