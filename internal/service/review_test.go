package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundline/storefront/internal/transport"
)

func TestCreateAndListReviews(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	user := createUser(t, r, "reviewer")
	prod := createProduct(t, r, "Flip 6", "Speakers", "JBL", "129.99")

	first, err := svc.CreateReview(context.Background(), user.ID, prod.ID, transport.CreateReviewRequest{
		Rating:  4,
		Comment: "solid speaker",
	})
	require.NoError(t, err)

	second, err := svc.CreateReview(context.Background(), user.ID, prod.ID, transport.CreateReviewRequest{
		Rating:   5,
		Comment:  "grew on me",
		ImageURL: "https://example.com/proof.jpg",
	})
	require.NoError(t, err)

	reviews, err := svc.ListReviews(context.Background(), prod.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, second.ID, reviews[0].ID, "newest review first")
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "reviewer", reviews[0].Username)
	assert.Equal(t, first.ID, reviews[1].ID)
	assert.Equal(t, "reviewer", reviews[1].Username)
}

func TestCreateReviewRequiresRating(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}
	user := createUser(t, r, "reviewer")
	prod := createProduct(t, r, "Mixer", "Audio Equipment", "Yamaha", "199.00")

	_, err := svc.CreateReview(context.Background(), user.ID, prod.ID, transport.CreateReviewRequest{
		Comment: "no stars given",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var fe *transport.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "rating", fe.Field)
}

func TestListReviewsEmptyProduct(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &ReviewService{Repo: r}

	reviews, err := svc.ListReviews(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
