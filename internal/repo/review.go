package repo

import (
	"context"

	"github.com/soundline/storefront/internal/models"
)

func (r *GormRepo) ListReviews(ctx context.Context, productID uint) ([]models.ReviewWithAuthor, error) {
	out := make([]models.ReviewWithAuthor, 0)
	err := r.DB.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.username AS username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").Order("reviews.id DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
