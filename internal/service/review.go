package service

import (
	"context"

	"github.com/soundline/storefront/internal/events"
	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/repo"
	"github.com/soundline/storefront/internal/transport"
)

type ReviewService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *ReviewService) ListReviews(ctx context.Context, productID uint) ([]models.ReviewWithAuthor, error) {
	return s.Repo.ListReviews(ctx, productID)
}

func (s *ReviewService) CreateReview(ctx context.Context, userID, productID uint, req transport.CreateReviewRequest) (*models.Review, error) {
	if req.Rating == 0 {
		return nil, fieldError("rating", "rating is required")
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		ImageURL:  req.ImageURL,
	}

	if _, err := s.Repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicReviews, review.ID, map[string]any{
		"type":       "review_created",
		"review_id":  review.ID,
		"product_id": productID,
		"user_id":    userID,
		"rating":     req.Rating,
	}); err != nil {
		logging.FromContext(ctx).Warn("review_event_error", "review_id", review.ID, "error", err)
	}

	return review, nil
}
