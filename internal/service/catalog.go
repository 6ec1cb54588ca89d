package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/events"
	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/repo"
	"github.com/soundline/storefront/internal/search"
	"github.com/soundline/storefront/internal/transport"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Index    *search.Index
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return prod, err
}

func (s *CatalogService) ListProducts(ctx context.Context, f transport.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, f)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, fieldError("name", "name is required")
	}
	if req.Category == "" {
		return nil, fieldError("category", "category is required")
	}
	if req.Brand == "" {
		return nil, fieldError("brand", "brand is required")
	}
	if req.Price.IsNegative() {
		return nil, fieldError("price", "price must not be negative")
	}
	status := models.StockStatus(req.StockStatus)
	if req.StockStatus == "" {
		status = models.StockInStock
	} else if !status.IsValid() {
		return nil, fieldError("stock_status", "unknown stock status")
	}

	prod := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		StockStatus:    status,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		Brand:          req.Brand,
		Images:         req.Images,
		Specifications: req.Specifications,
		IsFeatured:     req.IsFeatured,
	}

	if _, err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, err
	}

	l := logging.FromContext(ctx)
	if err := s.Index.IndexProduct(ctx, prod); err != nil {
		l.Warn("product_index_error", "product_id", prod.ID, "error", err)
	}
	if err := s.Producer.Publish(ctx, events.TopicProducts, prod.ID, map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	}); err != nil {
		l.Warn("product_event_error", "product_id", prod.ID, "error", err)
	}

	return prod, nil
}
